// settings.go — system settings view: branding logo status, AI credential
// presence and configuration pointers. Read-only; the settings file and the
// environment are the write path.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"evalboard/internal/config"
)

type settingsPage struct {
	logoPath string
	styles   Styles
}

func newSettingsPage(logoPath string, styles Styles) *settingsPage {
	return &settingsPage{logoPath: logoPath, styles: styles}
}

func (p *settingsPage) update(tea.KeyMsg) tea.Cmd { return nil }

func (p *settingsPage) view() string {
	st := p.styles
	var b strings.Builder
	b.WriteString(st.Title.Render("系统设置") + "\n")
	b.WriteString(st.Muted.Render("平台品牌与 AI 分析配置。修改 .evalboard/settings.yaml 后重启生效。") + "\n\n")

	b.WriteString(st.Bold.Render("品牌标识") + "\n")
	fmt.Fprintf(&b, "  %s %s\n", st.Label.Render("Logo 路径:"), p.logoPath)
	if err := config.ValidateLogo(p.logoPath); err != nil {
		fmt.Fprintf(&b, "  %s %s\n", st.Label.Render("校验状态:"), st.Warning.Render(err.Error()))
	} else {
		fmt.Fprintf(&b, "  %s %s\n", st.Label.Render("校验状态:"), st.Success.Render("PNG 校验通过"))
	}
	b.WriteString(st.Muted.Render("  仅支持 PNG 格式，大小不超过 2MB。") + "\n\n")

	b.WriteString(st.Bold.Render("AI 智能分析") + "\n")
	if config.APIKey() != "" {
		fmt.Fprintf(&b, "  %s %s\n", st.Label.Render("API 密钥:"), st.Success.Render("已配置"))
	} else {
		fmt.Fprintf(&b, "  %s %s\n", st.Label.Render("API 密钥:"), st.Warning.Render("未配置"))
		b.WriteString(st.Muted.Render("  设置 GEMINI_API_KEY 环境变量后重启以启用报告 AI 分析。") + "\n")
	}
	return b.String()
}
