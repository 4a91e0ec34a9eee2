package main

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// English is first so that it wins whenever nothing better matches.
var (
	pageLanguages   = []language.Tag{language.English, language.Japanese}
	languageMatcher = language.NewMatcher(pageLanguages)
)

func init() {
	for key, msg := range map[string]string{
		"Dyad":          "ダイアード",
		"Triad":         "トライアド",
		"Select Color:": "色を選択:",
		"Recent Colors": "最近の色",
	} {
		message.SetString(language.Japanese, key, msg)
	}
}

func pageLanguage(c *gin.Context) language.Tag {
	tags, _, _ := language.ParseAcceptLanguage(c.GetHeader("Accept-Language"))
	_, index, _ := languageMatcher.Match(tags...)
	return pageLanguages[index]
}

// headings returns the section headings of the viewer translated for tag.
func headings(tag language.Tag) map[string]string {
	p := message.NewPrinter(tag)
	return map[string]string{
		"dyad":   p.Sprintf("Dyad"),
		"triad":  p.Sprintf("Triad"),
		"select": p.Sprintf("Select Color:"),
		"recent": p.Sprintf("Recent Colors"),
	}
}
