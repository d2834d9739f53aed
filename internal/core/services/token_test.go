package services

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/careerguide/internal/core/domain"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestIssuer(t *testing.T, algorithm string) *TokenIssuer {
	t.Helper()
	issuer, err := NewTokenIssuer(testSecret, algorithm, 30*time.Minute)
	require.NoError(t, err)
	return issuer
}

// flipMiddle swaps one character in the middle of the given token segment.
func flipMiddle(token string, segment int) string {
	parts := strings.Split(token, ".")
	s := []byte(parts[segment])
	i := len(s) / 2
	if s[i] == 'A' {
		s[i] = 'B'
	} else {
		s[i] = 'A'
	}
	parts[segment] = string(s)
	return strings.Join(parts, ".")
}

// flipLastBit toggles the lowest bit of the final character of a segment. For
// unpadded base64 that bit may fall outside the decoded bytes.
func flipLastBit(token string, segment int) string {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	parts := strings.Split(token, ".")
	s := []byte(parts[segment])
	last := len(s) - 1
	s[last] = alphabet[strings.IndexByte(alphabet, s[last])^1]
	parts[segment] = string(s)
	return strings.Join(parts, ".")
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	for _, alg := range []string{"HS256", "HS384", "HS512"} {
		t.Run(alg, func(t *testing.T) {
			issuer := newTestIssuer(t, alg)

			token, err := issuer.Issue("a@x.com")
			require.NoError(t, err)

			subject, err := issuer.Parse(token)
			require.NoError(t, err)
			assert.Equal(t, "a@x.com", subject)
		})
	}
}

func TestTokenIssuer_Expiry(t *testing.T) {
	issuer := newTestIssuer(t, "HS256")
	issuedAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return issuedAt }

	token, err := issuer.Issue("a@x.com")
	require.NoError(t, err)

	issuer.now = func() time.Time { return issuedAt.Add(29 * time.Minute) }
	_, err = issuer.Parse(token)
	require.NoError(t, err)

	issuer.now = func() time.Time { return issuedAt.Add(31 * time.Minute) }
	_, err = issuer.Parse(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestTokenIssuer_TamperedToken(t *testing.T) {
	issuer := newTestIssuer(t, "HS256")
	token, err := issuer.Issue("a@x.com")
	require.NoError(t, err)

	for segment, name := range []string{"header", "payload", "signature"} {
		t.Run(name, func(t *testing.T) {
			_, err := issuer.Parse(flipMiddle(token, segment))
			assert.ErrorIs(t, err, domain.ErrInvalidToken)
		})
		t.Run(name+" trailing bit", func(t *testing.T) {
			tampered := flipLastBit(token, segment)
			require.NotEqual(t, token, tampered)
			_, err := issuer.Parse(tampered)
			assert.ErrorIs(t, err, domain.ErrInvalidToken)
		})
	}
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	issuer := newTestIssuer(t, "HS256")
	other, err := NewTokenIssuer(strings.Repeat("z", 32), "HS256", time.Minute)
	require.NoError(t, err)

	token, err := other.Issue("a@x.com")
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenIssuer_WrongAlgorithm(t *testing.T) {
	issuer := newTestIssuer(t, "HS256")

	token, err := newTestIssuer(t, "HS512").Issue("a@x.com")
	require.NoError(t, err)
	_, err = issuer.Parse(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "a@x.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = issuer.Parse(unsigned)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenIssuer_RequiredClaims(t *testing.T) {
	issuer := newTestIssuer(t, "HS256")

	testCases := []struct {
		name   string
		claims Claims
	}{
		{
			name: "missing expiry",
			claims: Claims{RegisteredClaims: jwt.RegisteredClaims{
				Subject: "a@x.com",
			}},
		},
		{
			name: "missing subject",
			claims: Claims{RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tc.claims).SignedString([]byte(testSecret))
			require.NoError(t, err)

			_, err = issuer.Parse(token)
			assert.ErrorIs(t, err, domain.ErrInvalidToken)
		})
	}
}

func TestTokenIssuer_Garbage(t *testing.T) {
	issuer := newTestIssuer(t, "HS256")

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := issuer.Parse(token)
		assert.ErrorIs(t, err, domain.ErrInvalidToken, token)
	}
}

func TestNewTokenIssuer_Validation(t *testing.T) {
	_, err := NewTokenIssuer("short", "HS256", time.Minute)
	assert.ErrorIs(t, err, ErrWeakSecret)

	_, err = NewTokenIssuer(testSecret, "RS256", time.Minute)
	assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)

	_, err = NewTokenIssuer(testSecret, "HS256", 0)
	assert.Error(t, err)

	issuer, err := NewTokenIssuer(testSecret, "", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "HS256", issuer.method.Alg())
	assert.Equal(t, time.Minute, issuer.TTL())
}
