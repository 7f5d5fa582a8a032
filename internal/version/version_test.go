package version

import (
	"strings"
	"testing"
)

func TestVersionContainsSemver(t *testing.T) {
	// Цветовые коды могут присутствовать или нет в зависимости от TTY;
	// проверяем только содержательные части.
	for _, part := range []string{"0", "1", "-dev"} {
		if !strings.Contains(Version, part) {
			t.Errorf("Version %q misses %q", Version, part)
		}
	}
}
