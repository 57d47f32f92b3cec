package api

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"cvlab/internal/store"
)

// PageHandler serves the two server-rendered pages: the login form and the
// builder shell. The builder page carries no session material; its script
// obtains an access token through the refresh endpoint, which rides on the
// HttpOnly cookie.
type PageHandler struct {
	store store.Store
}

func NewPageHandler(documentStore store.Store) *PageHandler {
	return &PageHandler{store: documentStore}
}

var loginPage = template.Must(template.New("login").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Sign in</title></head>
<body>
<h1>Sign in</h1>
<p>Enter your email and we will send you a login link.</p>
<form id="login-form">
<input type="email" name="email" placeholder="you@example.com" required>
<button type="submit">Send link</button>
</form>
<p id="login-status"></p>
<script>
const next = new URLSearchParams(location.search).get("next") || "";
document.getElementById("login-form").addEventListener("submit", async (e) => {
  e.preventDefault();
  const email = new FormData(e.target).get("email");
  const res = await fetch("/v1/auth/login", {
    method: "POST",
    headers: {"Content-Type": "application/json"},
    body: JSON.stringify({email, next}),
  });
  const body = await res.json();
  const status = document.getElementById("login-status");
  if (!res.ok) { status.textContent = body.error || "something went wrong"; return; }
  status.textContent = body.message;
  if (body.link) { location.href = body.link; }
});
</script>
</body>
</html>
`))

var builderPage = template.Must(template.New("builder").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body data-resume-id="{{.ID}}">
<div id="toolbar">
  <span id="save-status">saved</span>
  <a id="export-link" href="/export/{{.ID}}">Download PDF</a>
</div>
<iframe id="preview" title="preview"></iframe>
<script>
(async () => {
  const id = document.body.dataset.resumeId;
  const status = document.getElementById("save-status");

  const res = await fetch("/v1/auth/refresh", {method: "POST"});
  if (!res.ok) {
    location.href = "/login?next=" + encodeURIComponent(location.pathname);
    return;
  }
  const token = (await res.json()).access_token;

  const refreshPreview = async () => {
    const r = await fetch("/v1/resumes/" + id + "/preview", {
      headers: {Authorization: "Bearer " + token},
    });
    if (r.ok) { document.getElementById("preview").srcdoc = await r.text(); }
  };

  const proto = location.protocol === "https:" ? "wss:" : "ws:";
  const ws = new WebSocket(proto + "//" + location.host + "/v1/ws/editor/" + id);
  ws.addEventListener("open", () => ws.send(JSON.stringify({type: "auth", token})));
  ws.addEventListener("message", (e) => {
    const msg = JSON.parse(e.data);
    if (msg.type === "save_status") {
      if (msg.error) { status.textContent = "save failed"; }
      else if (msg.is_saving) { status.textContent = "saving..."; }
      else if (msg.is_dirty) { status.textContent = "unsaved changes"; }
      else { status.textContent = "saved"; }
    } else if (msg.status === "completed" || msg.status === "error") {
      refreshPreview();
    }
  });
  ws.addEventListener("close", () => { status.textContent = "disconnected"; });

  refreshPreview();
})();
</script>
</body>
</html>
`))

// Login renders the email form.
func (h *PageHandler) Login(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	_ = loginPage.Execute(c.Writer, nil)
}

// Builder renders the editor shell for one owned document.
func (h *PageHandler) Builder(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	id, err := parseResumeID(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "not found")
		return
	}

	doc, err := h.store.Get(c.Request.Context(), id, userID)
	if err != nil {
		c.String(http.StatusNotFound, "not found")
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	_ = builderPage.Execute(c.Writer, gin.H{"ID": doc.ID, "Title": doc.Title})
}
