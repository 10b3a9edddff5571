package generate_test

import (
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luperfect/utils/pkg/generate"
)

func TestAlphabet(t *testing.T) {
	t.Parallel()

	t.Run("english alphabet", func(t *testing.T) {
		t.Parallel()
		alphabet, err := generate.Alphabet(generate.En)
		require.NoError(t, err)
		assert.Equal(t, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789", alphabet)
	})

	t.Run("russian alphabet includes yo in both cases", func(t *testing.T) {
		t.Parallel()
		alphabet, err := generate.Alphabet(generate.Ru)
		require.NoError(t, err)
		assert.Equal(t, 33*2+10, utf8.RuneCountInString(alphabet))
		assert.True(t, strings.HasPrefix(alphabet, "абвгдеё"))
		assert.Contains(t, alphabet, "АБВГДЕЁЖЗИЙ")
		assert.True(t, strings.HasSuffix(alphabet, "ЭЮЯ0123456789"))
	})

	t.Run("unknown language is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := generate.Alphabet(generate.Lang(42))
		require.ErrorIs(t, err, generate.ErrInvalidArgument)
	})
}

func TestRandomString(t *testing.T) {
	t.Parallel()

	for _, lang := range []generate.Lang{generate.En, generate.Ru, generate.DefaultLang} {
		t.Run("uses the "+lang.String()+" alphabet", func(t *testing.T) {
			t.Parallel()
			alphabet, err := generate.Alphabet(lang)
			require.NoError(t, err)

			s, err := generate.RandomString(64, lang)
			require.NoError(t, err)
			assert.Equal(t, 64, utf8.RuneCountInString(s))
			for _, r := range s {
				assert.True(t, strings.ContainsRune(alphabet, r), "unexpected character %q", r)
			}
		})
	}

	t.Run("default language is russian", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, generate.Ru, generate.DefaultLang)
	})

	t.Run("rejects negative length", func(t *testing.T) {
		t.Parallel()
		_, err := generate.RandomString(-1, generate.En)
		require.ErrorIs(t, err, generate.ErrInvalidArgument)
	})

	t.Run("rejects unknown language", func(t *testing.T) {
		t.Parallel()
		_, err := generate.RandomString(5, generate.Lang(7))
		require.ErrorIs(t, err, generate.ErrInvalidArgument)
	})
}

func TestRandomStringFrom(t *testing.T) {
	t.Parallel()

	t.Run("uses only characters from the set", func(t *testing.T) {
		t.Parallel()
		var sawA, sawB bool
		for range 100 {
			s, err := generate.RandomStringFromString(10, "ab")
			require.NoError(t, err)
			require.Len(t, s, 10)
			require.Regexp(t, "^[ab]{10}$", s)
			sawA = sawA || strings.Contains(s, "a")
			sawB = sawB || strings.Contains(s, "b")
		}
		assert.True(t, sawA)
		assert.True(t, sawB)
	})

	t.Run("duplicates collapse to a single candidate", func(t *testing.T) {
		t.Parallel()
		s, err := generate.RandomStringFromString(20, "zzzz")
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("z", 20), s)
	})

	t.Run("duplicates do not skew the distribution", func(t *testing.T) {
		t.Parallel()
		var as int
		const trials = 200
		for range trials {
			s, err := generate.RandomStringFromString(100, "aaaaaaaab")
			require.NoError(t, err)
			as += strings.Count(s, "a")
		}
		// With deduplication 'a' is drawn half the time, not 8 times out of 9.
		ratio := float64(as) / float64(trials*100)
		assert.InDelta(t, 0.5, ratio, 0.05)
	})

	t.Run("supports multibyte characters", func(t *testing.T) {
		t.Parallel()
		s, err := generate.RandomStringFrom(20, []rune("日本語"))
		require.NoError(t, err)
		assert.Equal(t, 20, utf8.RuneCountInString(s))
		assert.Regexp(t, "^[日本語]{20}$", s)
	})

	t.Run("zero length yields empty string", func(t *testing.T) {
		t.Parallel()
		s, err := generate.RandomStringFromString(0, "abc")
		require.NoError(t, err)
		assert.Empty(t, s)
	})

	t.Run("empty set is invalid", func(t *testing.T) {
		t.Parallel()
		_, err := generate.RandomStringFromString(5, "")
		require.ErrorIs(t, err, generate.ErrInvalidArgument)

		_, err = generate.RandomStringFrom(5, []rune{})
		require.ErrorIs(t, err, generate.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "characterSet")
	})

	t.Run("invalid utf-8 set is rejected", func(t *testing.T) {
		t.Parallel()
		s, err := generate.RandomStringFromString(6, "\xff\xfe")
		require.ErrorIs(t, err, generate.ErrInvalidArgument)
		assert.Empty(t, s)
		assert.Contains(t, err.Error(), "must be valid UTF-8")

		_, err = generate.RandomStringFromString(6, "ab\xff")
		require.ErrorIs(t, err, generate.ErrInvalidArgument)
	})

	t.Run("invalid runes are rejected", func(t *testing.T) {
		t.Parallel()
		for _, r := range []rune{0xD800, utf8.MaxRune + 1, -1} {
			_, err := generate.RandomStringFrom(4, []rune{'a', r})
			require.ErrorIs(t, err, generate.ErrInvalidArgument, "rune %U", r)
		}
	})

	t.Run("nil set is missing", func(t *testing.T) {
		t.Parallel()
		_, err := generate.RandomStringFrom(5, nil)
		require.ErrorIs(t, err, generate.ErrMissingArgument)
		assert.NotErrorIs(t, err, generate.ErrInvalidArgument)
	})

	t.Run("length is validated before the set", func(t *testing.T) {
		t.Parallel()
		_, err := generate.RandomStringFrom(-1, nil)
		require.ErrorIs(t, err, generate.ErrInvalidArgument)

		_, err = generate.RandomStringFrom(generate.MaxLength+1, []rune("ab"))
		require.ErrorIs(t, err, generate.ErrInvalidArgument)
	})
}

func TestRandomStringFrom_Concurrent(t *testing.T) {
	t.Parallel()

	const goroutines = 50
	const iterations = 100

	var wg sync.WaitGroup
	errs := make(chan error, goroutines*iterations)
	results := make(chan string, goroutines*iterations)

	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range iterations {
				s, err := generate.RandomString(16, generate.En)
				if err != nil {
					errs <- err
					return
				}
				results <- s
			}
		}()
	}

	wg.Wait()
	close(errs)
	close(results)

	for err := range errs {
		t.Errorf("concurrent RandomString error: %v", err)
	}

	seen := make(map[string]bool)
	for s := range results {
		assert.False(t, seen[s], "duplicate string %q", s)
		seen[s] = true
	}
	assert.Len(t, seen, goroutines*iterations)
}

func BenchmarkRandomString(b *testing.B) {
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := generate.RandomString(16, generate.En); err != nil {
				b.Fatal(err)
			}
		}
	})
}
