package controller

import (
	"errors"
	"fmt"
	"html"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hisab-app/hisab-server/models/dbmodels"
	"gorm.io/gorm"
	"k8s.io/klog/v2"
)

const maxInviteTokenLength = 512

const ogTitle = "Hisab – Group invite"
const ogDescription = "You're invited to join a group in Hisab. Open the link to accept."

// InviteLookup resolves an invite token to its row.
type InviteLookup interface {
	GetByToken(token string) (*dbmodels.Invite, error)
}

type InviteController struct {
	Invites InviteLookup
	// SiteUrl hosts the static redirect.html page
	SiteUrl string
	// BaseUrl is this service's public base url, used on the OG preview page
	BaseUrl string
}

func (ic *InviteController) siteBase() string {
	return strings.TrimSuffix(ic.SiteUrl, "/")
}

// HandleInviteRedirect validates an invite token and always answers with a
// 302 to the hosted redirect page. A failed validation call degrades to an
// optimistic redirect rather than blocking the user.
func (ic *InviteController) HandleInviteRedirect(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" || len(token) > maxInviteTokenLength {
		return c.Redirect(fmt.Sprintf("%s/redirect.html?error=missing", ic.siteBase()), fiber.StatusFound)
	}

	invite, err := ic.Invites.GetByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Redirect(fmt.Sprintf("%s/redirect.html?error=expired", ic.siteBase()), fiber.StatusFound)
		}
		// Fail open; the app revalidates the token on its own
		klog.Errorf("Error validating invite token %s", err)
		return c.Redirect(fmt.Sprintf("%s/redirect.html?token=%s", ic.siteBase(), url.QueryEscape(token)), fiber.StatusFound)
	}
	if invite.ExpiresAt > 0 && invite.ExpiresAt < time.Now().UnixMilli() {
		return c.Redirect(fmt.Sprintf("%s/redirect.html?error=expired", ic.siteBase()), fiber.StatusFound)
	}

	return c.Redirect(fmt.Sprintf("%s/redirect.html?token=%s", ic.siteBase(), url.QueryEscape(token)), fiber.StatusFound)
}

// HandleInvitePage serves an HTML page whose only job is carrying Open Graph
// tags for link previews; a script forwards the browser to /invite-redirect.
func (ic *InviteController) HandleInvitePage(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" || len(token) > maxInviteTokenLength {
		return c.Redirect(fmt.Sprintf("%s/redirect.html?error=missing", ic.siteBase()), fiber.StatusFound)
	}

	c.Set(fiber.HeaderCacheControl, "public, max-age=0")
	c.Set(fiber.HeaderContentType, "text/html; charset=utf-8")
	return c.SendString(buildInviteHtml(token, strings.TrimSuffix(ic.BaseUrl, "/")))
}

func buildInviteHtml(token string, base string) string {
	ogImageUrl := fmt.Sprintf("%s/og-invite-image?token=%s", base, url.QueryEscape(token))
	canonicalUrl := fmt.Sprintf("%s/invite-redirect?token=%s", base, url.QueryEscape(token))

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width,initial-scale=1.0">
<title>%s</title>
<meta property="og:type" content="website">
<meta property="og:title" content="%s">
<meta property="og:description" content="%s">
<meta property="og:image" content="%s">
<meta property="og:url" content="%s">
<meta property="og:site_name" content="Hisab">
<meta name="twitter:card" content="summary_large_image">
<meta name="twitter:title" content="%s">
<meta name="twitter:description" content="%s">
<meta name="twitter:image" content="%s">
<script>
(function() {
  var base = "%s";
  var target = base + "/invite-redirect" + (window.location.search || "");
  window.location.replace(target);
})();
</script>
</head>
<body>
<p>Redirecting...</p>
</body>
</html>`,
		html.EscapeString(ogTitle),
		html.EscapeString(ogTitle),
		html.EscapeString(ogDescription),
		html.EscapeString(ogImageUrl),
		html.EscapeString(canonicalUrl),
		html.EscapeString(ogTitle),
		html.EscapeString(ogDescription),
		html.EscapeString(ogImageUrl),
		html.EscapeString(base),
	)
}
