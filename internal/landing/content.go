package landing

import (
	"html/template"

	"golang.org/x/text/language"
)

const (
	// DownloadURL points at the latest notarized disk image.
	DownloadURL = "https://github.com/taroutcy/claudemd-viewer/releases/latest/download/ClaudeMDViewer.dmg"
	// RepositoryURL is the source repository of the app.
	RepositoryURL = "https://github.com/taroutcy/claudemd-viewer"
	// FontsURL is the single webfont stylesheet the page loads.
	FontsURL = "https://fonts.googleapis.com/css2?family=Fraunces:wght@400;600;700&family=DM+Sans:wght@400;500;700&display=swap"
)

// Text is one translatable string in both page languages.
type Text struct {
	EN string
	JA string
}

// Headline is a hero title line with a highlighted span and a forced break.
type Headline struct {
	Lead       string
	Highlight  string
	Tail       string
	SecondLine string
}

// MockupItem is a row in the menu bar popover mockup.
type MockupItem struct {
	Icon     template.HTML
	Label    Text
	Shortcut string
}

// Feature is one of the feature cards under the call to action.
type Feature struct {
	Icon        template.HTML
	Title       Text
	Description Text
}

// Content is everything the landing page says.
type Content struct {
	Default   language.Tag
	Alternate language.Tag

	Title         string
	AppName       string
	ToggleFlags   Text
	HeroTitle     struct{ EN, JA Headline }
	HeroSubtitle  Text
	MockupItems   []MockupItem
	Download      Text
	RepositoryCTA string
	Features      []Feature
	Footer        string
}

// svg bodies (stroke-only, 24x24 viewBox)
const (
	iconDocument template.HTML = `<path d="M14 2H6a2 2 0 0 0-2 2v16a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2V8z"/>
                    <polyline points="14 2 14 8 20 8"/>
                    <line x1="16" y1="13" x2="8" y2="13"/>
                    <line x1="16" y1="17" x2="8" y2="17"/>
                    <polyline points="10 9 9 9 8 9"/>`
	iconDocumentSmall template.HTML = `<path d="M14 2H6a2 2 0 0 0-2 2v16a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2V8z"/>
                            <polyline points="14 2 14 8 20 8"/>`
	iconFolder template.HTML = `<path d="M22 19a2 2 0 0 1-2 2H4a2 2 0 0 1-2-2V5a2 2 0 0 1 2-2h5l2 3h9a2 2 0 0 1 2 2z"/>`
	iconLink   template.HTML = `<path d="M10 13a5 5 0 0 0 7.54.54l3-3a5 5 0 0 0-7.07-7.07l-1.72 1.71"/>
                        <path d="M14 11a5 5 0 0 0-7.54-.54l-3 3a5 5 0 0 0 7.07 7.07l1.71-1.71"/>`
	iconKeyboard template.HTML = `<rect x="2" y="4" width="20" height="16" rx="2"/>
                        <path d="M6 8h.01M10 8h.01M14 8h.01M18 8h.01M8 12h.01M12 12h.01M16 12h.01M7 16h10"/>`
	iconStar template.HTML = `<polygon points="12 2 15.09 8.26 22 9.27 17 14.14 18.18 21.02 12 17.77 5.82 21.02 7 14.14 2 9.27 8.91 8.26 12 2"/>`
)

// DefaultContent returns the ClaudeMD Viewer landing page copy.
func DefaultContent() Content {
	c := Content{
		Default:       language.English,
		Alternate:     language.Japanese,
		Title:         "ClaudeMD Viewer — Natural Menu Bar Access",
		AppName:       "ClaudeMD Viewer",
		ToggleFlags:   Text{EN: "🇺🇸", JA: "🇯🇵"},
		HeroSubtitle: Text{
			EN: "macOS menu bar app for instant access to all your project docs",
			JA: "macOSメニューバーから全てのプロジェクトドキュメントに即座にアクセス",
		},
		MockupItems: []MockupItem{
			{Icon: iconFolder, Label: Text{EN: "my-project/CLAUDE.md", JA: "マイプロジェクト/CLAUDE.md"}},
			{Icon: iconLink, Label: Text{EN: "github/repo/CLAUDE.md", JA: "github/リポジトリ/CLAUDE.md"}},
			{Icon: iconKeyboard, Label: Text{EN: "Quick access anywhere", JA: "どこからでも素早くアクセス"}, Shortcut: "⌘⇧M"},
		},
		Download:      Text{EN: "Download for macOS", JA: "macOS版をダウンロード"},
		RepositoryCTA: "GitHub",
		Features: []Feature{
			{
				Icon:        iconFolder,
				Title:       Text{EN: "Local Scan", JA: "ローカルスキャン"},
				Description: Text{EN: "Auto-detect CLAUDE.md files", JA: "CLAUDE.mdを自動検出"},
			},
			{
				Icon:        iconLink,
				Title:       Text{EN: "GitHub Sync", JA: "GitHub連携"},
				Description: Text{EN: "Fetch from repositories", JA: "リポジトリから取得"},
			},
			{
				Icon:        iconKeyboard,
				Title:       Text{EN: "⌘⇧M Shortcut", JA: "⌘⇧M ショートカット"},
				Description: Text{EN: "Instant access", JA: "即座にアクセス"},
			},
			{
				Icon:        iconStar,
				Title:       Text{EN: "Free & Open", JA: "完全無料"},
				Description: Text{EN: "MIT license", JA: "MITライセンス"},
			},
		},
		Footer: "© 2026 ClaudeMD Viewer",
	}
	c.HeroTitle.EN = Headline{Lead: "Your ", Highlight: "CLAUDE.md", SecondLine: "always within reach"}
	c.HeroTitle.JA = Headline{Highlight: "CLAUDE.md", Tail: "に", SecondLine: "いつでもアクセス"}
	return c
}

// Translatables returns every bilingual string in page order.
func (c Content) Translatables() []Text {
	out := []Text{
		{EN: headlineText(c.HeroTitle.EN), JA: headlineText(c.HeroTitle.JA)},
		c.HeroSubtitle,
	}
	for _, item := range c.MockupItems {
		out = append(out, item.Label)
	}
	out = append(out, c.Download)
	for _, f := range c.Features {
		out = append(out, f.Title, f.Description)
	}
	return out
}

func headlineText(h Headline) string {
	return h.Lead + h.Highlight + h.Tail + h.SecondLine
}
