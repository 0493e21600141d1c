// Package reg2ps converts Windows Registry export (.reg) text into a
// PowerShell script.
//
// # Overview
//
// Every section header becomes a New-Item command and every value line a
// Set-ItemProperty command, in input order:
//
//	[HKEY_CURRENT_USER\Software\Test]
//	"Foo"="bar"
//	"N"=dword:0000002a
//
// converts to:
//
//	New-Item -Path 'HKCU:\Software\Test' -Force
//	Set-ItemProperty -Path 'HKCU:\Software\Test' -Name 'Foo' -Value 'bar' -Type String
//	Set-ItemProperty -Path 'HKCU:\Software\Test' -Name 'N' -Value 42 -Type DWord
//
// # Value Types
//
// The value's prefix selects the -Type argument:
//
//	dword:    DWord         hex digits printed as a decimal integer
//	hex(7):   MultiString   UTF-16LE bytes split on NUL into @("a","b")
//	hex(2):   ExpandString  UTF-16LE bytes with NULs removed, double-quoted
//	hex:      Binary        byte digits with commas removed, double-quoted
//	"..."     String        quotes replaced by single quotes
//	other     String        text as-is in single quotes
//
// # Errors
//
// Conversion stops at the first bad line and returns an *Error carrying the
// ErrKind and 1-based line number. Use errors.Is with the sentinels:
//
//	out, err := reg2ps.Convert(text)
//	if errors.Is(err, reg2ps.ErrUnknownHive) {
//	    line, _ := reg2ps.LineOf(err)
//	    ...
//	}
//
// Conversion is pure: no state is kept between calls and concurrent calls
// need no locking.
package reg2ps
