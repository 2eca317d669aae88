package domain

// Actor is the caller of an operation as resolved by the auth layer.
// The zero value is an anonymous caller.
type Actor struct {
	ID      string
	IsStaff bool
}

func (a Actor) Authenticated() bool {
	return a.ID != ""
}

// CanManage reports whether the actor may act on a resource owned by ownerID.
func (a Actor) CanManage(ownerID string) bool {
	return a.IsStaff || (a.Authenticated() && a.ID == ownerID)
}
