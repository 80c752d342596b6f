package notify

import "testing"

func TestFromConfig(t *testing.T) {
	if got := FromConfig(true); got != PermissionGranted {
		t.Errorf("FromConfig(true) = %v, want granted", got)
	}
	if got := FromConfig(false); got != PermissionDenied {
		t.Errorf("FromConfig(false) = %v, want denied", got)
	}
}

func TestGrantDeny(t *testing.T) {
	n := New(PermissionDefault)
	if n.Permission() != PermissionDefault {
		t.Errorf("Permission() = %v, want default", n.Permission())
	}

	n.Grant()
	if n.Permission() != PermissionGranted {
		t.Errorf("Permission() after Grant = %v, want granted", n.Permission())
	}

	n.Deny()
	if n.Permission() != PermissionDenied {
		t.Errorf("Permission() after Deny = %v, want denied", n.Permission())
	}
}
