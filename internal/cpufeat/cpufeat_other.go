//go:build !amd64

package cpufeat

var hasAVX2 = false
