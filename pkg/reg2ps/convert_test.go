package reg2ps

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "string value",
			input: "[HKEY_CURRENT_USER\\Software\\Test]\n\"Foo\"=\"bar\"\n",
			want: "New-Item -Path 'HKCU:\\Software\\Test' -Force\n" +
				"Set-ItemProperty -Path 'HKCU:\\Software\\Test' -Name 'Foo' -Value 'bar' -Type String\n",
		},
		{
			name:  "dword value",
			input: "[HKEY_LOCAL_MACHINE\\X]\n\"N\"=dword:0000002a",
			want: "New-Item -Path 'HKLM:\\X' -Force\n" +
				"Set-ItemProperty -Path 'HKLM:\\X' -Name 'N' -Value 42 -Type DWord\n",
		},
		{
			name: "regedit export with banner and CRLF",
			input: "Windows Registry Editor Version 5.00\r\n\r\n" +
				"[HKEY_CLASSES_ROOT\\.txt]\r\n" +
				"@=\"txtfile\"\r\n",
			want: "New-Item -Path 'HKCR:\\.txt' -Force\n" +
				"Set-ItemProperty -Path 'HKCR:\\.txt' -Name '@' -Value 'txtfile' -Type String\n",
		},
		{
			name:  "section without values",
			input: "[HKEY_USERS\\S-1-5-21]\n[HKEY_CURRENT_CONFIG\\System]\n",
			want: "New-Item -Path 'HKU:\\S-1-5-21' -Force\n" +
				"New-Item -Path 'HKCC:\\System' -Force\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestConvert_ValueTypes(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantValue string
		wantType  ValueType
	}{
		{"dword max", `"N"=dword:ffffffff`, "4294967295", TypeDWord},
		{"dword uppercase digits", `"N"=dword:0000FFFF`, "65535", TypeDWord},
		{"multi string", `"M"=hex(7):61,00,00,00,62,00,00,00,00,00`, `@("a","b")`, TypeMultiString},
		{"multi string empty", `"M"=hex(7):00,00`, `@("")`, TypeMultiString},
		{"expand string", `"E"=hex(2):25,00,50,00,41,00,54,00,48,00,25,00,00,00`, `"%PATH%"`, TypeExpandString},
		{"expand string unpaired byte", `"E"=hex(2):41,00,42`, `"A"`, TypeExpandString},
		{"expand string bad low byte", `"E"=hex(2):zz,41,00`, `""`, TypeExpandString},
		{"multi string bad low byte", `"M"=hex(7):61,00,zz,00,62,00`, `@("a","b")`, TypeMultiString},
		{"binary", `"B"=hex:01,02,ff`, `"0102ff"`, TypeBinary},
		{"binary empty", `"B"=hex:`, `""`, TypeBinary},
		{"quoted string", `"S"="hello world"`, `'hello world'`, TypeString},
		{"quoted string with equals", `"S"="a=b=c"`, `'a=b=c'`, TypeString},
		{"bare string", `"S"=plain`, `'plain'`, TypeString},
		{"padded value", `"S"=   "x"   `, `'x'`, TypeString},
		{"lone quote", `"S"="`, `''`, TypeString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse("[HKEY_LOCAL_MACHINE\\X]\n" + tt.line)
			require.NoError(t, err)
			require.Len(t, s.Commands, 2)

			c := s.Commands[1]
			assert.Equal(t, SetItemProperty, c.Kind)
			assert.Equal(t, 2, c.Line)
			assert.Equal(t, tt.wantValue, c.Value)
			assert.Equal(t, tt.wantType, c.Type)
		})
	}
}

func TestConvert_Names(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{`"Foo"="bar"`, "Foo"},
		{`Foo="bar"`, "Foo"},
		{`@="bar"`, "@"},
		{`""inner""="bar"`, `"inner"`},
		{`"a\\b"="bar"`, `a\\b`},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			s, err := Parse("[HKEY_LOCAL_MACHINE\\X]\n" + tt.line)
			require.NoError(t, err)
			require.Equal(t, tt.want, s.Commands[1].Name)
		})
	}
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		sentinel *Error
		line     int
		message  string
	}{
		{
			name:     "value before section",
			input:    "\n\"A\"=\"b\"",
			sentinel: ErrValueOutsideSection,
			line:     2,
			message:  "Value outside of registry path on line 2",
		},
		{
			name:     "unterminated section",
			input:    "[HKEY_LOCAL_MACHINE\\X",
			sentinel: ErrMalformedSectionHeader,
			line:     1,
			message:  "Invalid registry key format on line 1",
		},
		{
			name:     "unknown hive",
			input:    "[HKEY_UNKNOWN\\X]",
			sentinel: ErrUnknownHive,
			line:     1,
			message:  "Unknown registry hive on line 1",
		},
		{
			name:     "short hive name is not a hive",
			input:    "[HKLM\\Software]",
			sentinel: ErrUnknownHive,
			line:     1,
		},
		{
			name:     "empty section",
			input:    "[]",
			sentinel: ErrUnknownHive,
			line:     1,
		},
		{
			name:     "missing equals",
			input:    "[HKEY_LOCAL_MACHINE\\X]\n\n\"NoEquals\"",
			sentinel: ErrMissingEquals,
			line:     3,
			message:  "Missing '=' on line 3",
		},
		{
			name:     "invalid dword",
			input:    "[HKEY_LOCAL_MACHINE\\X]\n\"N\"=dword:zz",
			sentinel: ErrInvalidDword,
			line:     2,
			message:  "Invalid DWORD value on line 2",
		},
		{
			name:     "empty dword",
			input:    "[HKEY_LOCAL_MACHINE\\X]\n\"N\"=dword:",
			sentinel: ErrInvalidDword,
			line:     2,
		},
		{
			name:     "dword wider than 32 bits",
			input:    "[HKEY_LOCAL_MACHINE\\X]\n\"N\"=dword:100000000",
			sentinel: ErrInvalidDword,
			line:     2,
		},
		{
			name:     "first error wins",
			input:    "[HKEY_LOCAL_MACHINE\\X]\n\"A\"=\"ok\"\n[BAD]\n\"N\"=dword:zz",
			sentinel: ErrUnknownHive,
			line:     3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Convert(tt.input)
			require.Error(t, err)
			require.Empty(t, out)
			require.ErrorIs(t, err, tt.sentinel)

			line, ok := LineOf(err)
			require.True(t, ok)
			require.Equal(t, tt.line, line)

			if tt.message != "" {
				require.EqualError(t, err, tt.message)
			}
		})
	}
}

func TestConvert_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\r\n\t", "\uFEFF\n"} {
		out, err := Convert(input)
		require.ErrorIs(t, err, ErrEmptyInput)
		require.Empty(t, out)

		_, ok := LineOf(err)
		require.False(t, ok)
	}
	require.EqualError(t, ErrEmptyInput, "Input field is empty. Please provide REG file content.")
}

func TestConvert_OnlyBanner(t *testing.T) {
	out, err := Convert("Windows Registry Editor Version 5.00\n\n")
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestConvert_InvalidDwordUnwrapsCause(t *testing.T) {
	_, err := Convert("[HKEY_LOCAL_MACHINE\\X]\n\"N\"=dword:xyz")

	var convErr *Error
	require.True(t, errors.As(err, &convErr))
	require.Equal(t, ErrKindInvalidDword, convErr.Kind)
	require.Equal(t, `"N"=dword:xyz`, convErr.Text)
	require.Error(t, errors.Unwrap(err))
}

func TestConvert_Idempotent(t *testing.T) {
	input := "Windows Registry Editor Version 5.00\n\n" +
		"[HKEY_LOCAL_MACHINE\\Software\\App]\n" +
		"\"Path\"=hex(2):25,00,41,00,25,00,00,00\n" +
		"\"List\"=hex(7):61,00,00,00,00,00\n" +
		"\"Level\"=dword:00000003\n"

	first, err := Convert(input)
	require.NoError(t, err)
	second, err := Convert(input)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestConvert_SectionSwitchesPath(t *testing.T) {
	input := "[HKEY_LOCAL_MACHINE\\A]\n\"x\"=\"1\"\n[HKEY_CURRENT_USER\\B]\n\"y\"=\"2\"\n"

	s, err := Parse(input)
	require.NoError(t, err)
	require.Len(t, s.Commands, 4)
	require.Equal(t, `HKLM:\A`, s.Commands[1].Path)
	require.Equal(t, `HKCU:\B`, s.Commands[3].Path)
	require.Equal(t, 2, s.Keys())
	require.Equal(t, 2, s.Values())
}

func TestConvertWithOptions_JoinContinuations(t *testing.T) {
	input := "[HKEY_LOCAL_MACHINE\\X]\n" +
		"\"B\"=hex:01,02,\\\n" +
		"  03,04\n"

	_, err := Convert(input)
	require.ErrorIs(t, err, ErrMissingEquals)
	line, _ := LineOf(err)
	require.Equal(t, 3, line)

	out, err := ConvertWithOptions(input, Options{JoinContinuations: true})
	require.NoError(t, err)
	require.Equal(t,
		"New-Item -Path 'HKLM:\\X' -Force\n"+
			"Set-ItemProperty -Path 'HKLM:\\X' -Name 'B' -Value \"01020304\" -Type Binary\n",
		out)
}

func TestConvertWithOptions_JoinedLineReportsFirstLine(t *testing.T) {
	input := "[HKEY_LOCAL_MACHINE\\X]\n" +
		"\"N\"=dword:00\\\n" +
		"zz\n"

	_, err := ConvertWithOptions(input, Options{JoinContinuations: true})
	require.ErrorIs(t, err, ErrInvalidDword)
	line, _ := LineOf(err)
	require.Equal(t, 2, line)
}

func TestConvert_LongInput(t *testing.T) {
	var b strings.Builder
	b.WriteString("[HKEY_LOCAL_MACHINE\\Bulk]\n")
	for i := 0; i < 1000; i++ {
		b.WriteString("\"v\"=dword:00000001\n")
	}

	s, err := Parse(b.String())
	require.NoError(t, err)
	require.Equal(t, 1, s.Keys())
	require.Equal(t, 1000, s.Values())
}
