package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	checks := []Check{
		{Name: "dashboard"},
		{Name: "dashboard-login"},
		{Name: "render"},
	}

	tests := []struct {
		name    string
		pattern string
		want    []string
		wantErr string
	}{
		{
			name:    "empty pattern matches everything",
			pattern: "",
			want:    []string{"dashboard", "dashboard-login", "render"},
		},
		{
			name:    "exact name",
			pattern: "render",
			want:    []string{"render"},
		},
		{
			name:    "glob prefix",
			pattern: "dashboard*",
			want:    []string{"dashboard", "dashboard-login"},
		},
		{
			name:    "no matches",
			pattern: "login*",
			wantErr: "no checks match",
		},
		{
			name:    "invalid pattern",
			pattern: "[",
			wantErr: "invalid check filter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Filter(checks, tt.pattern)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)

			var names []string
			for _, c := range got {
				names = append(names, c.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}
