package sanitize

import "testing"

func TestLine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain line untouched",
			in:   "arm-linux-gcc -c -Iinc src/a.c -o a.o",
			want: "arm-linux-gcc -c -Iinc src/a.c -o a.o",
		},
		{
			name: "trailing newline trimmed",
			in:   "make[2]: Entering directory\n",
			want: "make[2]: Entering directory",
		},
		{
			name: "color codes removed",
			in:   "\x1b[32marm-linux-g++\x1b[0m -c a.cpp -o a.o",
			want: "arm-linux-g++ -c a.cpp -o a.o",
		},
		{
			name: "cursor control removed",
			in:   "\x1b[2K\x1b[1Gbuilding module",
			want: "building module",
		},
		{
			name: "two-character escape removed",
			in:   "\x1bMdone",
			want: "done",
		},
		{
			name: "quotes and backslashes preserved",
			in:   `gcc -DNAME=\"foo\" "weird arg"`,
			want: `gcc -DNAME=\"foo\" "weird arg"`,
		},
		{
			name: "whitespace-only line becomes empty",
			in:   "   \t  ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Line(tt.in); got != tt.want {
				t.Errorf("Line(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
