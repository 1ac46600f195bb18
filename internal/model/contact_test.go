package model

import "testing"

func TestValidContactStatus(t *testing.T) {
	for _, s := range []string{"new", "read", "replied", "closed"} {
		if !ValidContactStatus(s) {
			t.Errorf("expected %q valid", s)
		}
	}
	for _, s := range []string{"", "all", "archived", "NEW", "unread"} {
		if ValidContactStatus(s) {
			t.Errorf("expected %q invalid", s)
		}
	}
}
