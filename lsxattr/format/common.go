package format

/*

A packed name list, as handed back by listxattr(2):

	"user.foo\0user.bar\0security.selinux\0"

Names are terminated by a single NUL. There is no count and no separator
besides the terminator; the kernel reports the number of valid bytes.

*/

const (
	// Capacity of the name-list buffer and the value buffer.
	BUFFER_SIZE = 1024
	// Byte that terminates every name in a packed list
	NAME_TERMINATOR byte = 0
)

// Hex dump layout
const (
	HEX_GROUP  = 8
	HEX_INDENT = "    "
	HEX_FORMAT = "0x%02x"
)

// Indentation used for names in the listing and for the headers above each block.
const (
	LIST_INDENT   = "    "
	HEADER_INDENT = "  "
)
