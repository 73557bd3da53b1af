package domain

import "testing"

func TestIsGmailAddress(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{email: "a@gmail.com", want: true},
		{email: "first.last+tag@gmail.com", want: true},
		{email: "under_score-1@gmail.com", want: true},
		{email: "a@yahoo.com", want: false},
		{email: "a@gmail.com.evil.org", want: false},
		{email: "@gmail.com", want: false},
		{email: "a b@gmail.com", want: false},
		{email: "A@GMAIL.COM", want: false},
		{email: "", want: false},
	}
	for _, tc := range tests {
		if got := IsGmailAddress(tc.email); got != tc.want {
			t.Fatalf("IsGmailAddress(%q) = %v, want %v", tc.email, got, tc.want)
		}
	}
}
