package domain

// Zero overwrites key material with zeros once it is no longer needed.
func Zero(b []byte) {
	clear(b)
}
