package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "conf.json", "-a", "localhost"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "long flag with equals",
			args:         []string{"--config=alt.json", "-a", "localhost"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=alt.json"},
		},
		{
			name:         "flag without value followed by another flag",
			args:         []string{"-c", "-a", "localhost"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "nothing allowed",
			args:         []string{"-a", "localhost", "-d", "dsn"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterArgs(tc.args, tc.allowedFlags)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"app", "-c", "settings.json", "-a", ":8000"}
	assert.Equal(t, "settings.json", JsonConfigFlags())

	os.Args = []string{"app", "-a", ":8000"}
	assert.Equal(t, "", JsonConfigFlags())
}
