package common

// WipeByteArray overwrites b with zeros. Used for derived keys and for passwords read from the
// terminal once they have been handed to the backend.
//
// A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
