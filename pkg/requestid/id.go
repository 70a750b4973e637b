package requestid

// ID is the identifier assigned to a single request.
type ID string

func (id ID) String() string {
	return string(id)
}
