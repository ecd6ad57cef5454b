package browser

import (
	"strings"
	"testing"
)

const loginPageHTML = `
<html>
<head>
  <title>Deployment Dashboard</title>
  <script>console.log("noise")</script>
  <style>.hidden { display: none; }</style>
</head>
<body>
  <nav><a href="/docs">Docs</a></nav>
  <main>
    <h1>Welcome back</h1>
    <form action="/auth" method="post">
      <input type="email" name="email" placeholder="Email">
      <button type="submit" id="github-signin">Sign in with GitHub</button>
    </form>
  </main>
</body>
</html>`

func TestSnapshotPage(t *testing.T) {
	snap, err := SnapshotPage(loginPageHTML)
	if err != nil {
		t.Fatalf("SnapshotPage failed: %v", err)
	}

	if snap.Title != "Deployment Dashboard" {
		t.Errorf("title = %q, want %q", snap.Title, "Deployment Dashboard")
	}

	var tags []string
	for _, el := range snap.Elements {
		tags = append(tags, el.Tag)
	}
	want := []string{"a", "form", "input", "button"}
	if len(tags) != len(want) {
		t.Fatalf("elements = %v, want tags %v", snap.Elements, want)
	}
	for i, tag := range want {
		if tags[i] != tag {
			t.Errorf("element %d tag = %q, want %q", i, tags[i], tag)
		}
	}

	button := snap.Elements[3]
	if button.Text != "Sign in with GitHub" {
		t.Errorf("button text = %q, want %q", button.Text, "Sign in with GitHub")
	}
	if button.ID != "github-signin" {
		t.Errorf("button id = %q, want %q", button.ID, "github-signin")
	}

	link := snap.Elements[0]
	if link.Href != "/docs" {
		t.Errorf("link href = %q, want %q", link.Href, "/docs")
	}
}

func TestSnapshotPageSkipsNoise(t *testing.T) {
	snap, err := SnapshotPage(`<html><body><script><a href="/x">hidden</a></script><svg><a href="/y">also hidden</a></svg></body></html>`)
	if err != nil {
		t.Fatalf("SnapshotPage failed: %v", err)
	}
	if len(snap.Elements) != 0 {
		t.Errorf("expected no elements, got %v", snap.Elements)
	}
}

func TestSnapshotString(t *testing.T) {
	snap, err := SnapshotPage(loginPageHTML)
	if err != nil {
		t.Fatalf("SnapshotPage failed: %v", err)
	}

	rendered := snap.String()
	if !strings.Contains(rendered, `title: "Deployment Dashboard"`) {
		t.Errorf("rendered snapshot missing title:\n%s", rendered)
	}
	if !strings.Contains(rendered, `"Sign in with GitHub"`) {
		t.Errorf("rendered snapshot missing button text:\n%s", rendered)
	}
	if !strings.Contains(rendered, `href="/docs"`) {
		t.Errorf("rendered snapshot missing link href:\n%s", rendered)
	}
}

func TestSnapshotPageCapsElements(t *testing.T) {
	var b strings.Builder
	b.WriteString("<html><body>")
	for i := 0; i < 100; i++ {
		b.WriteString(`<a href="/x">link</a>`)
	}
	b.WriteString("</body></html>")

	snap, err := SnapshotPage(b.String())
	if err != nil {
		t.Fatalf("SnapshotPage failed: %v", err)
	}
	if len(snap.Elements) != snapshotMaxElements {
		t.Errorf("elements = %d, want cap %d", len(snap.Elements), snapshotMaxElements)
	}
}

func TestSnapshotPageEmpty(t *testing.T) {
	snap, err := SnapshotPage("")
	if err != nil {
		t.Fatalf("SnapshotPage failed: %v", err)
	}
	if len(snap.Elements) != 0 || snap.Title != "" {
		t.Errorf("expected empty snapshot, got %+v", snap)
	}
}
