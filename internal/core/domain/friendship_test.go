package domain

import "testing"

func TestRequestStatus_Transitions(t *testing.T) {
	cases := []struct {
		from RequestStatus
		to   RequestStatus
		want bool
	}{
		{RequestPending, RequestAccepted, true},
		{RequestPending, RequestRejected, true},
		{RequestAccepted, RequestRejected, false},
		{RequestAccepted, RequestPending, false},
		{RequestRejected, RequestAccepted, false},
		{RequestRejected, RequestPending, false},
		{RequestPending, RequestPending, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestInvitationStatus_Transitions(t *testing.T) {
	cases := []struct {
		from InvitationStatus
		to   InvitationStatus
		want bool
	}{
		{InvitationPending, InvitationAccepted, true},
		{InvitationPending, InvitationDeclined, true},
		{InvitationAccepted, InvitationDeclined, false},
		{InvitationDeclined, InvitationAccepted, false},
		{InvitationAccepted, InvitationPending, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestSortedPair(t *testing.T) {
	a, b := SortedPair("zoe@bu.edu", "amy@bu.edu")
	if a != "amy@bu.edu" || b != "zoe@bu.edu" {
		t.Errorf("unexpected order: %s, %s", a, b)
	}

	a, b = SortedPair("amy@bu.edu", "zoe@bu.edu")
	if a != "amy@bu.edu" || b != "zoe@bu.edu" {
		t.Errorf("order should not depend on argument order: %s, %s", a, b)
	}
}
