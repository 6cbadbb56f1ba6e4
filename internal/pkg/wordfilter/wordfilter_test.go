package wordfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("Lowercase And Diacritic Fold", func(t *testing.T) {
		assert.Equal(t, "kurdistan", Normalize("Kürdistan"))
		assert.Equal(t, "serefsiz", Normalize("ŞEREFSİZ"))
	})

	t.Run("Strips Punctuation", func(t *testing.T) {
		assert.Equal(t, "merhaba dunya", Normalize("Merhaba, dünya!!!"))
	})

	t.Run("Collapses Whitespace", func(t *testing.T) {
		assert.Equal(t, "a b c", Normalize("  a \t b \n c  "))
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, "", Normalize(""))
		assert.Equal(t, "", Normalize("  ...  "))
	})
}

func TestFilter_Scan(t *testing.T) {
	f := New()

	t.Run("Diacritic Variants Both Match", func(t *testing.T) {
		for _, text := range []string{"Kürdistan", "kurdistan"} {
			result := f.Scan(text)
			assert.True(t, result.Matched, text)
			assert.Contains(t, result.Words, "kürdistan")
		}
	})

	t.Run("Empty Input No Match", func(t *testing.T) {
		result := f.Scan("")
		assert.False(t, result.Matched)
		assert.Empty(t, result.Words)
	})

	t.Run("Clean Text No Match", func(t *testing.T) {
		result := f.Scan("Bu harika bir makale, tebrikler!")
		assert.False(t, result.Matched)
	})

	t.Run("Embedded Token Caught By Containment", func(t *testing.T) {
		result := f.Scan("selamkurdistanselam")
		assert.True(t, result.Matched)
		assert.Contains(t, result.Words, "kürdistan")
	})

	t.Run("Digit Substitution Variant", func(t *testing.T) {
		result := f.Scan("kurd1stan bağımsız olmalı")
		assert.True(t, result.Matched)
		assert.Contains(t, result.Words, "kurd1stan")
	})

	t.Run("Original Spelling Reported Once", func(t *testing.T) {
		result := f.Scan("kürdistan KÜRDİSTAN kurdistan")
		count := 0
		for _, w := range result.Words {
			if w == "kürdistan" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("Multi Word Entry", func(t *testing.T) {
		result := f.Scan("bu bir terör örgütü propagandası")
		assert.True(t, result.Matched)
		assert.Contains(t, result.Words, "terör örgütü")
	})
}

func TestFilter_ScanComment(t *testing.T) {
	f := New()

	t.Run("Unions Fields", func(t *testing.T) {
		result := f.ScanComment("pkk", "user@example.com", "kurdistan her yerde")
		assert.True(t, result.Matched)
		assert.Contains(t, result.Words, "pkk")
		assert.Contains(t, result.Words, "kürdistan")
	})

	t.Run("All Clean", func(t *testing.T) {
		result := f.ScanComment("Ahmet", "ahmet@example.com", "Çok güzel bir yazı olmuş")
		assert.False(t, result.Matched)
		assert.Empty(t, result.Words)
	})

	t.Run("Empty Fields", func(t *testing.T) {
		result := f.ScanComment("", "", "")
		assert.False(t, result.Matched)
	})
}

func TestFilter_CustomWords(t *testing.T) {
	f := NewWithWords([]string{"yasaklı"})

	assert.True(t, f.Scan("bu yasakli bir kelime").Matched)
	assert.False(t, f.Scan("kurdistan").Matched)

	f.AddWords("ikinci")
	assert.True(t, f.Scan("ikinci kelime de yasak").Matched)
}
