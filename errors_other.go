//go:build !unix

package libuv

func (e Error) isErrno(error) bool { return false }
