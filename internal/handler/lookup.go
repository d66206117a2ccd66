package handler

// orNotFound turns the (nil, nil) result of a service lookup into notFound.
func orNotFound[T any](v *T, err error, notFound error) (*T, error) {
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, notFound
	}
	return v, nil
}
