package identity

import "testing"

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"Acme Corp", "acmecorp"},
		{"  Acme Corp  ", "acmecorp"},
		{"beta.co", "betaco"},
		{"Jitta-Wealth Co., Ltd.", "jittawealthco,ltd"},
		{"ACME", "acme"},
		{"", ""},
		{"   ", ""},
		{". - .", ""},
	}
	for _, tc := range cases {
		if got := NormalizeName(tc.in); got != tc.want {
			t.Fatalf("NormalizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeNameIdempotent(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"Acme Corp", "beta.co", "Thai-Fund Management", "x"} {
		once := NormalizeName(in)
		if twice := NormalizeName(once); twice != once {
			t.Fatalf("NormalizeName not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}

func TestCompanyKeyFromEmail(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"admin@jitta.com", "jitta"},
		{"user@beta.co", "beta"},
		{"a@sub.domain.tld", "sub"},
		{"someone@Acme-Corp.co.th", "acmecorp"},
		{"no-at-sign", ""},
		{"", ""},
		{"trailing@", ""},
	}
	for _, tc := range cases {
		if got := CompanyKeyFromEmail(tc.in); got != tc.want {
			t.Fatalf("CompanyKeyFromEmail(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCompanyKeyFromEmailMatchesNormalizedSubdomain(t *testing.T) {
	t.Parallel()

	if got, want := CompanyKeyFromEmail("x@Beta-Fund.co.th"), NormalizeName("Beta-Fund"); got != want {
		t.Fatalf("domain key %q, want %q", got, want)
	}
}
