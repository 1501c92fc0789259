package landing

import "html/template"

// stylesheet is the page CSS. The rule hiding the alternate language is
// appended by the page template so it follows the configured language tags.
const stylesheet template.CSS = `
* {
    margin: 0;
    padding: 0;
    box-sizing: border-box;
}

:root {
    --orange: #ff6b35;
    --pink: #ff85a8;
    --red: #ff4757;
    --coral: #ff7f50;
    --peach: #ffb088;
    --dark-bg: #0f0f1e;
    --dark-card: #1a1a2e;
    --dark-border: #2a2a40;
    --text-primary: #fff5f5;
    --text-secondary: #b8a8b0;
    --shadow: rgba(255, 107, 53, 0.2);
    --glow: rgba(255, 107, 53, 0.4);
}

body {
    font-family: 'DM Sans', sans-serif;
    background: var(--dark-bg);
    color: var(--text-primary);
    overflow: hidden;
    height: 100vh;
    position: relative;
}

/* Organic background blobs */
.bg-blob {
    position: absolute;
    border-radius: 40% 60% 70% 30% / 40% 50% 60% 50%;
    opacity: 0.15;
    filter: blur(80px);
    animation: float 25s ease-in-out infinite;
}

.blob-1 {
    width: 700px;
    height: 700px;
    background: linear-gradient(135deg, var(--orange), var(--pink));
    top: -250px;
    left: -150px;
    animation-delay: 0s;
}

.blob-2 {
    width: 600px;
    height: 600px;
    background: linear-gradient(225deg, var(--coral), var(--pink));
    bottom: -200px;
    right: -100px;
    animation-delay: 8s;
}

.blob-3 {
    width: 500px;
    height: 500px;
    background: linear-gradient(45deg, var(--orange), var(--coral));
    top: 40%;
    right: 5%;
    animation-delay: 16s;
}

@keyframes float {
    0%, 100% {
        transform: translate(0, 0) rotate(0deg);
    }
    33% {
        transform: translate(40px, -40px) rotate(8deg);
    }
    66% {
        transform: translate(-30px, 30px) rotate(-8deg);
    }
}

/* Language toggle */
.lang-toggle {
    position: fixed;
    top: 24px;
    right: 24px;
    z-index: 100;
    background: var(--dark-card);
    backdrop-filter: blur(10px);
    border: 2px solid var(--dark-border);
    color: var(--text-primary);
    padding: 10px 20px;
    border-radius: 50px;
    font-size: 13px;
    font-weight: 600;
    cursor: pointer;
    transition: all 0.3s cubic-bezier(0.4, 0, 0.2, 1);
    box-shadow: 0 4px 20px rgba(0, 0, 0, 0.3);
}

.lang-toggle:hover {
    transform: translateY(-2px);
    border-color: var(--orange);
    box-shadow: 0 6px 24px var(--glow);
}

/* Container */
.container {
    height: 100vh;
    padding: 32px 48px;
    display: flex;
    flex-direction: column;
    justify-content: center;
    align-items: center;
    gap: 32px;
    max-width: 1400px;
    margin: 0 auto;
    position: relative;
    z-index: 1;
}

/* Logo */
.logo {
    display: flex;
    align-items: center;
    gap: 12px;
    animation: fadeIn 0.6s ease both;
}

.logo-icon {
    width: 40px;
    height: 40px;
    filter: drop-shadow(0 4px 12px var(--glow));
    animation: floatSlow 3s ease-in-out infinite;
}

.logo-icon svg {
    width: 100%;
    height: 100%;
    stroke: var(--orange);
}

@keyframes floatSlow {
    0%, 100% { transform: translateY(0); }
    50% { transform: translateY(-8px); }
}

.logo-text {
    font-family: 'Fraunces', serif;
    font-size: 28px;
    font-weight: 700;
    color: var(--text-primary);
}

/* Hero */
.hero {
    text-align: center;
    max-width: 900px;
    animation: fadeIn 0.8s ease 0.2s both;
}

.hero-title {
    font-family: 'Fraunces', serif;
    font-size: clamp(42px, 7vw, 78px);
    font-weight: 700;
    line-height: 1.15;
    margin-bottom: 16px;
    color: var(--text-primary);
}

.hero-title .highlight {
    background: linear-gradient(135deg, var(--pink), var(--orange));
    -webkit-background-clip: text;
    -webkit-text-fill-color: transparent;
    background-clip: text;
    position: relative;
    display: inline-block;
    filter: drop-shadow(0 0 20px var(--glow));
}

.hero-subtitle {
    font-size: clamp(16px, 1.8vw, 20px);
    color: var(--text-secondary);
    font-weight: 500;
    margin-bottom: 28px;
    line-height: 1.6;
}

/* App Preview */
.app-preview {
    margin: 20px 0;
    animation: fadeIn 1s ease 0.3s both;
}

.mockup {
    background: var(--dark-card);
    border: 2px solid var(--dark-border);
    border-radius: 16px;
    padding: 20px;
    box-shadow: 0 12px 40px rgba(0, 0, 0, 0.5),
                0 0 60px var(--glow);
    max-width: 380px;
    animation: floatSlow 4s ease-in-out infinite;
}

.mockup-header {
    display: flex;
    align-items: center;
    gap: 8px;
    padding-bottom: 12px;
    border-bottom: 1px solid var(--dark-border);
    margin-bottom: 12px;
}

.mockup-icon {
    width: 18px;
    height: 18px;
}

.mockup-icon svg {
    width: 100%;
    height: 100%;
    stroke: var(--orange);
}

.mockup-title {
    font-size: 13px;
    font-weight: 600;
    color: var(--text-primary);
}

.mockup-item {
    background: rgba(0, 217, 192, 0.08);
    border: 1px solid rgba(0, 217, 192, 0.2);
    border-radius: 8px;
    padding: 10px 12px;
    margin-bottom: 8px;
    display: flex;
    align-items: center;
    gap: 10px;
    transition: all 0.3s;
}

.mockup-item:hover {
    background: rgba(0, 217, 192, 0.15);
    transform: translateX(4px);
}

.mockup-item-icon {
    width: 18px;
    height: 18px;
    flex-shrink: 0;
}

.mockup-item-icon svg {
    width: 100%;
    height: 100%;
    stroke: var(--pink);
}

.mockup-item-text {
    font-size: 13px;
    color: var(--text-secondary);
}

.mockup-shortcut {
    margin-left: auto;
    font-size: 12px;
    color: var(--pink);
    font-weight: 600;
}

/* CTA Buttons */
.cta-group {
    display: flex;
    gap: 16px;
    justify-content: center;
    flex-wrap: wrap;
    animation: fadeIn 1s ease 0.5s both;
}

.btn {
    padding: 14px 36px;
    font-family: 'DM Sans', sans-serif;
    font-size: 15px;
    font-weight: 700;
    text-decoration: none;
    border-radius: 50px;
    transition: all 0.3s cubic-bezier(0.4, 0, 0.2, 1);
    box-shadow: 0 4px 16px rgba(0, 0, 0, 0.3);
    position: relative;
    overflow: hidden;
}

.btn::before {
    content: '';
    position: absolute;
    top: 50%;
    left: 50%;
    width: 0;
    height: 0;
    border-radius: 50%;
    background: rgba(255, 255, 255, 0.2);
    transform: translate(-50%, -50%);
    transition: width 0.6s, height 0.6s;
}

.btn:hover::before {
    width: 300px;
    height: 300px;
}

.btn-primary {
    background: linear-gradient(135deg, var(--pink), var(--orange));
    color: var(--dark-bg);
}

.btn-primary:hover {
    transform: translateY(-3px);
    box-shadow: 0 8px 28px var(--glow);
}

.btn-secondary {
    background: transparent;
    color: var(--text-primary);
    border: 2px solid var(--dark-border);
}

.btn-secondary:hover {
    transform: translateY(-3px);
    border-color: var(--orange);
    box-shadow: 0 8px 24px var(--glow);
}

/* Floating Features */
.features {
    display: grid;
    grid-template-columns: repeat(4, 1fr);
    gap: 16px;
    width: 100%;
    max-width: 1100px;
    animation: fadeIn 1.2s ease 0.7s both;
}

.feature {
    background: var(--dark-card);
    backdrop-filter: blur(10px);
    padding: 24px 20px;
    border-radius: 20px;
    border: 2px solid var(--dark-border);
    transition: all 0.4s cubic-bezier(0.4, 0, 0.2, 1);
    animation: floatUp 0.8s ease both;
    box-shadow: 0 8px 24px rgba(0, 0, 0, 0.3);
}

.feature:nth-child(1) {
    animation-delay: 0.8s;
    transform: translateY(0) rotate(-1deg);
}

.feature:nth-child(2) {
    animation-delay: 0.9s;
    transform: translateY(0) rotate(1deg);
}

.feature:nth-child(3) {
    animation-delay: 1s;
    transform: translateY(0) rotate(-0.5deg);
}

.feature:nth-child(4) {
    animation-delay: 1.1s;
    transform: translateY(0) rotate(0.5deg);
}

@keyframes floatUp {
    from {
        opacity: 0;
        transform: translateY(40px);
    }
    to {
        opacity: 1;
    }
}

.feature:hover {
    transform: translateY(-8px) scale(1.03) rotate(0deg);
    box-shadow: 0 16px 48px rgba(0, 217, 192, 0.2);
    border-color: var(--orange);
}

.feature-icon {
    width: 40px;
    height: 40px;
    margin-bottom: 12px;
    display: inline-block;
    filter: drop-shadow(0 2px 8px var(--glow));
    animation: floatSlow 3s ease-in-out infinite;
}

.feature-icon svg {
    width: 100%;
    height: 100%;
    stroke: var(--orange);
}

.feature:nth-child(2) .feature-icon {
    animation-delay: 0.5s;
}

.feature:nth-child(3) .feature-icon {
    animation-delay: 1s;
}

.feature:nth-child(4) .feature-icon {
    animation-delay: 1.5s;
}

.feature-title {
    font-family: 'Fraunces', serif;
    font-size: 17px;
    font-weight: 600;
    margin-bottom: 8px;
    color: var(--text-primary);
}

.feature-desc {
    font-size: 14px;
    line-height: 1.6;
    color: var(--text-secondary);
}

/* Footer */
.footer {
    position: absolute;
    bottom: 16px;
    left: 50%;
    transform: translateX(-50%);
    font-size: 12px;
    color: var(--text-secondary);
    opacity: 0.6;
    animation: fadeIn 1.4s ease 1.2s both;
}

@keyframes fadeIn {
    from {
        opacity: 0;
    }
    to {
        opacity: 1;
    }
}

/* Mobile responsive */
@media (max-width: 1024px) {
    .features {
        grid-template-columns: repeat(2, 1fr);
        gap: 14px;
    }
}

@media (max-width: 768px) {
    .container {
        padding: 24px 20px;
        gap: 24px;
    }

    .hero-title {
        font-size: 38px;
    }

    .mockup {
        max-width: 100%;
    }

    .features {
        grid-template-columns: 1fr;
        gap: 12px;
    }

    .feature {
        padding: 18px 16px;
    }

    .blob-1, .blob-2, .blob-3 {
        opacity: 0.08;
    }
}
`
