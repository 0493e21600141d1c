package regtext

const (
	// ============================================================================
	// .reg File Format Tokens
	// ============================================================================

	// RegFileBanner is the prefix shared by every regedit header line.
	// Lines starting with it are skipped regardless of version.
	RegFileBanner = "Windows Registry Editor"

	// ============================================================================
	// Delimiters and Structural Tokens
	// ============================================================================

	// KeyOpenBracket marks the start of a registry key path
	KeyOpenBracket = "["

	// KeyCloseBracket marks the end of a registry key path
	KeyCloseBracket = "]"

	// ValueAssignment separates value names from their data
	ValueAssignment = "="

	// Quote is the double-quote character for value names and string data
	Quote = "\""

	// Backslash is used for path separators and line continuation
	Backslash = "\\"

	// ============================================================================
	// Line Endings
	// ============================================================================

	// LF is the line feed character
	LF = "\n"

	// ============================================================================
	// Value Type Prefixes
	// ============================================================================

	// DWORDPrefix identifies a DWORD value in .reg format
	DWORDPrefix = "dword:"

	// HexPrefix identifies binary data in .reg format
	HexPrefix = "hex:"

	// HexExpandSZPrefix identifies REG_EXPAND_SZ values (type 2)
	HexExpandSZPrefix = "hex(2):"

	// HexMultiSZPrefix identifies REG_MULTI_SZ values (type 7)
	HexMultiSZPrefix = "hex(7):"

	// HexByteSeparator separates bytes in hex data
	HexByteSeparator = ","

	// ============================================================================
	// Encoding Names
	// ============================================================================

	// EncodingUTF8 is the identifier for UTF-8 encoding
	EncodingUTF8 = "UTF-8"

	// EncodingUTF16LE is the identifier for UTF-16 little-endian encoding
	EncodingUTF16LE = "UTF-16LE"

	// EncodingUTF16BE is the identifier for UTF-16 big-endian encoding
	EncodingUTF16BE = "UTF-16BE"

	// EncodingWindows1252 is the identifier for the Windows-1252 code page
	EncodingWindows1252 = "WINDOWS-1252"

	// ============================================================================
	// Registry Key Path Prefixes (HKEY roots)
	// ============================================================================

	// These are the standard Windows registry root key names and abbreviations

	HKEYLocalMachine      = "HKEY_LOCAL_MACHINE"
	HKEYLocalMachineShort = "HKLM"

	HKEYCurrentUser      = "HKEY_CURRENT_USER"
	HKEYCurrentUserShort = "HKCU"

	HKEYClassesRoot      = "HKEY_CLASSES_ROOT"
	HKEYClassesRootShort = "HKCR"

	HKEYUsers      = "HKEY_USERS"
	HKEYUsersShort = "HKU"

	HKEYCurrentConfig      = "HKEY_CURRENT_CONFIG"
	HKEYCurrentConfigShort = "HKCC"

	// DriveSuffix turns a short root name into a PowerShell registry drive (HKLM:)
	DriveSuffix = ":"

	// ============================================================================
	// UTF-16 Encoding Constants
	// ============================================================================

	// UTF16CodeUnitSize is the size of a UTF-16 code unit in bytes
	UTF16CodeUnitSize = 2

	// NUL separates and terminates strings inside REG_MULTI_SZ/REG_EXPAND_SZ data
	NUL = "\x00"
)

var (
	// UTF16LEBOM is the byte order mark for UTF-16 little-endian
	UTF16LEBOM = []byte{0xFF, 0xFE}

	// UTF16BEBOM is the byte order mark for UTF-16 big-endian
	UTF16BEBOM = []byte{0xFE, 0xFF}

	// UTF8BOM is the byte order mark for UTF-8
	UTF8BOM = []byte{0xEF, 0xBB, 0xBF}
)

// Root pairs a registry root key name with its short form.
type Root struct {
	Name  string // HKEY_LOCAL_MACHINE
	Short string // HKLM
}

// Drive returns the PowerShell drive for the root (HKLM:).
func (r Root) Drive() string {
	return r.Short + DriveSuffix
}

// Roots lists the registry roots a .reg section header may start with.
// No name is a prefix of another, so at most one root matches any path.
var Roots = []Root{
	{Name: HKEYLocalMachine, Short: HKEYLocalMachineShort},
	{Name: HKEYCurrentUser, Short: HKEYCurrentUserShort},
	{Name: HKEYClassesRoot, Short: HKEYClassesRootShort},
	{Name: HKEYUsers, Short: HKEYUsersShort},
	{Name: HKEYCurrentConfig, Short: HKEYCurrentConfigShort},
}
