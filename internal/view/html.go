package view

import (
	"io"
	"net/url"

	"github.com/a-h/templ"
)

// htmlWriter keeps the first write error so components can write without checking each call.
type htmlWriter struct {
	w   io.Writer
	err error
}

func newHTMLWriter(w io.Writer) *htmlWriter {
	return &htmlWriter{w: w}
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func escapePathSegment(s string) string {
	return url.PathEscape(s)
}

func documentHead(title string) string {
	return `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/>` +
		`<meta name="viewport" content="width=device-width, initial-scale=1"/><title>` +
		templ.EscapeString(title) + `</title></head><body>`
}

const documentFoot = `</body></html>`

const swapScript = `<script>
(function () {
  var root = document.getElementById("team-matches");
  if (!root || !window.fetch) { return; }
  var controller = new AbortController();
  var mounted = true;
  window.addEventListener("pagehide", function () {
    mounted = false;
    controller.abort();
  });
  fetch(root.dataset.contentUrl, { signal: controller.signal, headers: { "Accept": "text/html" } })
    .then(function (res) { return res.text(); })
    .then(function (html) { if (mounted) { root.innerHTML = html; } })
    .catch(function (err) {
      if (!mounted || err.name === "AbortError") { return; }
      root.innerHTML = '<div class="failure-container" data-testid="failure" data-failure-kind="network">' +
        '<p class="failure-message">Could not reach the match data service.</p>' +
        '<div class="back-button-container"><a class="link-for-back" href="/">' +
        '<button class="back-button" type="button">Back</button></a></div></div>';
    });
})();
</script>`
