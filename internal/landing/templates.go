package landing

// pageTemplate is the html/template for the landing page. Text nodes are
// emitted in pairs: one span per language, the alternate hidden by CSS until
// the toggle script flips it.
const pageTemplate = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <link rel="preconnect" href="https://fonts.googleapis.com">
    <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
    <link href="{{.FontsURL}}" rel="stylesheet">
    <style>{{.Stylesheet}}
.lang-{{.AltLang}} {
    display: none;
}
    </style>
</head>
<body>
    <!-- Background blobs -->
    <div class="bg-blob blob-1"></div>
    <div class="bg-blob blob-2"></div>
    <div class="bg-blob blob-3"></div>

    <!-- Language toggle -->
    <button class="lang-toggle" onclick="toggleLang()">
        <span class="lang-btn-{{.Lang}}">{{.ToAlternate}}</span>
        <span class="lang-btn-{{.AltLang}}" style="display: none;">{{.ToDefault}}</span>
    </button>

    <div class="container">
        <!-- Logo -->
        <div class="logo">
            <div class="logo-icon">
                <svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">
                    {{.LogoIcon}}
                </svg>
            </div>
            <div class="logo-text">{{.AppName}}</div>
        </div>

        <!-- Hero -->
        <div class="hero">
            <h1 class="hero-title">
                <span class="lang-{{.Lang}}">{{template "headline" .HeroTitle.EN}}</span>
                <span class="lang-{{.AltLang}}">{{template "headline" .HeroTitle.JA}}</span>
            </h1>

            <p class="hero-subtitle">
                <span class="lang-{{.Lang}}">{{.HeroSubtitle.EN}}</span>
                <span class="lang-{{.AltLang}}">{{.HeroSubtitle.JA}}</span>
            </p>
        </div>

        <!-- App Preview Mockup -->
        <div class="app-preview">
            <div class="mockup">
                <div class="mockup-header">
                    <span class="mockup-icon">
                        <svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
                            {{.MockupIcon}}
                        </svg>
                    </span>
                    <span class="mockup-title">{{.AppName}}</span>
                </div>
{{- range .MockupItems}}
                <div class="mockup-item">
                    <span class="mockup-item-icon">
                        <svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
                            {{.Icon}}
                        </svg>
                    </span>
                    <span class="mockup-item-text lang-{{$.Lang}}">{{.Label.EN}}</span>
                    <span class="mockup-item-text lang-{{$.AltLang}}">{{.Label.JA}}</span>
{{- if .Shortcut}}
                    <span class="mockup-shortcut">{{.Shortcut}}</span>
{{- end}}
                </div>
{{- end}}
            </div>
        </div>

        <!-- CTA -->
        <div class="cta-group">
            <a href="{{.DownloadURL}}" class="btn btn-primary">
                <span class="lang-{{.Lang}}">{{.Download.EN}}</span>
                <span class="lang-{{.AltLang}}">{{.Download.JA}}</span>
            </a>
            <a href="{{.RepositoryURL}}" class="btn btn-secondary">
                {{.RepositoryCTA}}
            </a>
        </div>

        <!-- Features -->
        <div class="features">
{{- range .Features}}
            <div class="feature">
                <div class="feature-icon">
                    <svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">
                        {{.Icon}}
                    </svg>
                </div>
                <h3 class="feature-title">
                    <span class="lang-{{$.Lang}}">{{.Title.EN}}</span>
                    <span class="lang-{{$.AltLang}}">{{.Title.JA}}</span>
                </h3>
                <p class="feature-desc">
                    <span class="lang-{{$.Lang}}">{{.Description.EN}}</span>
                    <span class="lang-{{$.AltLang}}">{{.Description.JA}}</span>
                </p>
            </div>
{{- end}}
        </div>

        <!-- Footer -->
        <div class="footer">
            {{.Footer}}
        </div>
    </div>

    <script>
        let currentLang = '{{.Lang}}';

        function setDisplay(elements, value) {
            elements.forEach(el => {
                el.style.setProperty('display', value, 'important');
            });
        }

        function toggleLang() {
            const defaultElements = document.querySelectorAll('.lang-{{.Lang}}');
            const altElements = document.querySelectorAll('.lang-{{.AltLang}}');
            const defaultBtn = document.querySelector('.lang-btn-{{.Lang}}');
            const altBtn = document.querySelector('.lang-btn-{{.AltLang}}');

            if (currentLang === '{{.Lang}}') {
                setDisplay(defaultElements, 'none');
                setDisplay(altElements, 'inline');
                defaultBtn.style.display = 'none';
                altBtn.style.display = 'inline';
                currentLang = '{{.AltLang}}';
            } else {
                setDisplay(defaultElements, 'inline');
                setDisplay(altElements, 'none');
                defaultBtn.style.display = 'inline';
                altBtn.style.display = 'none';
                currentLang = '{{.Lang}}';
            }
        }
    </script>
</body>
</html>
{{- define "headline"}}{{.Lead}}<span class="highlight">{{.Highlight}}</span>{{.Tail}}<br>{{.SecondLine}}{{end}}`
