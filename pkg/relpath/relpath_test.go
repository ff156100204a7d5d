package relpath

import "testing"

func TestStrip(t *testing.T) {
	tests := []struct {
		name string
		path string
		root string
		want string
	}{
		{
			name: "strips through root component",
			path: "/home/user/project/xiaoju/src/file.c",
			root: "xiaoju",
			want: "src/file.c",
		},
		{
			name: "root absent returns path unchanged",
			path: "/usr/include/stdio.h",
			root: "xiaoju",
			want: "/usr/include/stdio.h",
		},
		{
			name: "empty root returns path unchanged",
			path: "/home/user/project/src/file.c",
			root: "",
			want: "/home/user/project/src/file.c",
		},
		{
			name: "root as final component returns path unchanged",
			path: "/home/user/xiaoju",
			root: "xiaoju",
			want: "/home/user/xiaoju",
		},
		{
			name: "first occurrence wins",
			path: "/data/proj/vendor/proj/inc",
			root: "proj",
			want: "vendor/proj/inc",
		},
		{
			name: "backslash separators normalized",
			path: `C:\work\xiaoju\src\file.cpp`,
			root: "xiaoju",
			want: "src/file.cpp",
		},
		{
			name: "partial component name does not match",
			path: "/home/xiaojuno/src/file.c",
			root: "xiaoju",
			want: "/home/xiaojuno/src/file.c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Strip(tt.path, tt.root); got != tt.want {
				t.Errorf("Strip(%q, %q) = %q, want %q", tt.path, tt.root, got, tt.want)
			}
		})
	}
}

// Stripping is idempotent: once the root component is gone, a second pass
// finds nothing to strip.
func TestStripIdempotent(t *testing.T) {
	once := Strip("/home/user/xiaoju/src/file.c", "xiaoju")
	twice := Strip(once, "xiaoju")
	if once != twice {
		t.Errorf("second Strip changed result: %q -> %q", once, twice)
	}
}
