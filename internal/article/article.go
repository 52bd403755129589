// Package article loads the document shown in the preview.
package article

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/adrg/frontmatter"
)

// ErrUnsupported is returned for files that are neither markdown nor HTML.
var ErrUnsupported = errors.New("unsupported article format")

//go:embed sample.md
var sample []byte

// Article is a markdown document with its metadata.
type Article struct {
	Title  string
	Author string
	Body   string
	Path   string
}

type meta struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
}

// Sample returns the built-in article.
func Sample() Article {
	a, err := parseMarkdown(sample)
	if err != nil {
		return Article{Title: "Sample", Body: string(sample)}
	}
	return a
}

// Load reads and parses the article at path.
func Load(path string) (Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Article{}, fmt.Errorf("read article: %w", err)
	}
	a, err := Parse(filepath.Base(path), data)
	if err != nil {
		return Article{}, err
	}
	a.Path = path
	return a, nil
}

// Parse decodes data according to the extension of name.
func Parse(name string, data []byte) (Article, error) {
	var (
		a   Article
		err error
	)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown", ".mdx":
		a, err = parseMarkdown(data)
	case ".html", ".htm":
		a, err = parseHTML(data)
	default:
		return Article{}, fmt.Errorf("%w: %s", ErrUnsupported, name)
	}
	if err != nil {
		return Article{}, fmt.Errorf("parse %s: %w", name, err)
	}
	if a.Title == "" {
		a.Title = strings.TrimSuffix(name, filepath.Ext(name))
	}
	return a, nil
}

func parseMarkdown(data []byte) (Article, error) {
	var m meta
	rest, err := frontmatter.Parse(bytes.NewReader(data), &m)
	if err != nil {
		return Article{}, err
	}
	body := string(rest)
	if m.Title == "" {
		m.Title = firstHeading(body)
	}
	return Article{Title: m.Title, Author: m.Author, Body: body}, nil
}

func firstHeading(body string) string {
	for _, line := range strings.Split(body, "\n") {
		if title, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(title)
		}
	}
	return ""
}

func parseHTML(data []byte) (Article, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return Article{}, err
	}
	doc.Find("script, style, noscript, nav, footer, iframe, svg").Remove()

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}
	author, _ := doc.Find(`meta[name="author"]`).Attr("content")

	root := doc.Find("article").First()
	if root.Length() == 0 {
		root = doc.Find("body")
	}

	var b strings.Builder
	root.Find("h1, h2, h3, h4, h5, h6, p, li, blockquote").Each(func(_ int, s *goquery.Selection) {
		text := strings.Join(strings.Fields(s.Text()), " ")
		if text == "" {
			return
		}
		switch tag := goquery.NodeName(s); tag {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			b.WriteString(strings.Repeat("#", int(tag[1]-'0')) + " " + text + "\n\n")
		case "li":
			b.WriteString("- " + text + "\n")
		case "blockquote":
			b.WriteString("> " + text + "\n\n")
		default:
			if s.ParentsFiltered("li, blockquote").Length() > 0 {
				return
			}
			b.WriteString(text + "\n\n")
		}
	})

	return Article{
		Title:  title,
		Author: strings.TrimSpace(author),
		Body:   strings.TrimSpace(b.String()) + "\n",
	}, nil
}
