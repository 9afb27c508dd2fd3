package playscan_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vvka-141/playscan/pkg/playscan"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, playscan.ExitSuccess},
		{"unknown flag", errors.New("unknown flag --foo"), playscan.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x'"), playscan.ExitUsageError},
		{"accepts args", errors.New("accepts 1 arg(s), received 0"), playscan.ExitUsageError},
		{"requires at least", errors.New("requires at least 2 arg(s), only received 1"), playscan.ExitUsageError},
		{"invalid argument", errors.New("invalid argument \"abc\" for \"--inventory-limit\""), playscan.ExitUsageError},
		{"invalid config", playscan.ErrInvalidConfig, playscan.ExitConfigError},
		{"wrapped invalid config", fmt.Errorf("load: %w", playscan.ErrInvalidConfig), playscan.ExitConfigError},
		{"project not found", fmt.Errorf("scan: %w", playscan.ErrProjectNotFound), playscan.ExitProjectNotFound},
		{"general error", errors.New("something went wrong"), playscan.ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := playscan.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
