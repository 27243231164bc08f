package authz

import (
	"testing"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/server/auth"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name    string
		actor   *auth.Claims
		ownerID int64
		allowed bool
	}{
		{"owner", &auth.Claims{UserID: 1}, 1, true},
		{"admin on foreign note", &auth.Claims{UserID: 2, IsAdmin: true}, 1, true},
		{"non-admin on foreign note", &auth.Claims{UserID: 2}, 1, false},
		{"nil claims", nil, 1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Authorize(tc.actor, tc.ownerID)
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, common.ErrorAccessDenied)
			}
		})
	}
}
