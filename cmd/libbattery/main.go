// Command libbattery builds the C-compatible shared library:
//
//	go build -buildmode=c-shared -o libbattery.so ./cmd/libbattery
//
// The exported surface hands out opaque handles; every handle returned to
// the caller owns exactly one matching free call. Fallible constructors
// return the null handle and record a message readable through
// battery_last_error_message on the calling thread.
package main

func main() {}
