package wordfilter

// defaultDenylist is the built-in moderation denylist. Entries are
// matched after normalization, so a single entry also covers its
// diacritic spellings; common digit-substitution variants are listed
// explicitly because normalization keeps digits.
var defaultDenylist = []string{
	"kürdistan",
	"kurd1stan",
	"kurdi5tan",
	"pkk",
	"terör örgütü",
	"orospu",
	"siktir",
	"piç",
	"yavşak",
	"şerefsiz",
	"amk",
}
