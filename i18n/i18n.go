// Package i18n loads the embedded locale files and looks up UI strings.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/andareed/msgbox/logging"
)

//go:embed locales/*.json
var localeFS embed.FS

// StorageKey is the preference key the chosen language is kept under.
const StorageKey = "lang"

// Fallback is used when nothing requested can be matched.
const Fallback = "en_US"

// Supported lists the bundled languages; the first entry is the fallback.
var Supported = []string{"en_US", "zh_CN"}

var matcher = language.NewMatcher(supportedTags())

func supportedTags() []language.Tag {
	tags := make([]language.Tag, len(Supported))
	for i, s := range Supported {
		tags[i] = language.MustParse(toBCP47(s))
	}
	return tags
}

// Translator resolves keys for one language.
type Translator struct {
	lang    string
	strings map[string]string
}

// New returns a translator for the closest supported match of the requested
// tags (in preference order). Tags may use '_' or '-' and may carry an
// encoding suffix as in $LANG ("zh_CN.UTF-8").
func New(requested ...string) (*Translator, error) {
	lang := Match(requested...)
	data, err := localeFS.ReadFile("locales/" + lang + ".json")
	if err != nil {
		return nil, fmt.Errorf("read locale %s: %w", lang, err)
	}
	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("parse locale %s: %w", lang, err)
	}
	t := &Translator{lang: lang, strings: make(map[string]string)}
	flatten("", tree, t.strings)
	logging.Infof("i18n: loaded %s (%d keys)", lang, len(t.strings))
	return t, nil
}

// Match picks the supported language for the requested tags.
func Match(requested ...string) string {
	var tags []language.Tag
	for _, r := range requested {
		r = strings.TrimSpace(r)
		if i := strings.IndexAny(r, ".@"); i >= 0 {
			r = r[:i]
		}
		if r == "" || r == "C" || r == "POSIX" {
			continue
		}
		tag, err := language.Parse(toBCP47(r))
		if err != nil {
			logging.Debugf("i18n: skipping unparsable tag %q: %v", r, err)
			continue
		}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return Fallback
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Fallback
	}
	return Supported[idx]
}

func (t *Translator) Lang() string { return t.lang }

// T returns the string for key with {{name}} placeholders replaced from
// name/value pairs. Unknown keys come back unchanged.
func (t *Translator) T(key string, pairs ...string) string {
	s, ok := t.strings[key]
	if !ok {
		return key
	}
	if len(pairs) < 2 {
		return s
	}
	oldnew := make([]string, 0, len(pairs))
	for i := 0; i+1 < len(pairs); i += 2 {
		oldnew = append(oldnew, "{{"+pairs[i]+"}}", pairs[i+1])
	}
	return strings.NewReplacer(oldnew...).Replace(s)
}

// Keys returns every loaded key, sorted.
func (t *Translator) Keys() []string {
	keys := make([]string, 0, len(t.strings))
	for k := range t.strings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch v := v.(type) {
		case string:
			out[key] = v
		case map[string]any:
			flatten(key, v, out)
		default:
			out[key] = fmt.Sprint(v)
		}
	}
}

func toBCP47(s string) string { return strings.ReplaceAll(s, "_", "-") }
