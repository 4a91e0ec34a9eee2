package main

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"gonum.org/v1/plot/vg"

	"github.com/DSU-DefSec/harmony-viewer/harmony"
)

const wheelSize = 12 * vg.Centimeter

// viewHarmony renders the viewer page. A color picked through the form is
// remembered in the session and, with history on, recorded.
func viewHarmony(c *gin.Context) {
	color, fromQuery, err := validateColor(c)
	status := http.StatusOK
	var formErr string
	if err != nil {
		debugPrint("viewharmony:", err)
		status = http.StatusBadRequest
		formErr = "Invalid color: " + c.Query("color")
		color = getColorOptional(c)
	} else if fromQuery {
		if err := saveColor(c, color); err != nil {
			errorPrint("saving session:", err)
		}
		if historyEnabled() {
			if err := insertLookup(color, c.ClientIP()); err != nil {
				errorPrint("recording lookup:", err)
			}
		}
	}

	set, err := harmony.Harmonize(color)
	if err != nil {
		errorPrint("viewharmony:", err)
		set, _ = harmony.Harmonize(hvConf.DefaultColor)
	}

	var recent []colorCount
	if historyEnabled() {
		recent, err = getPopularColors(hvConf.HistoryLimit)
		if err != nil {
			errorPrint("reading history:", err)
		}
	}

	c.HTML(status, "index.html", pageData(c, hvConf.Title, gin.H{
		"set":    set,
		"error":  formErr,
		"recent": recent,
	}))
}

func viewWheel(c *gin.Context) {
	color, _, err := validateColor(c)
	if err != nil {
		errorOut(c, err)
		return
	}
	set, err := harmony.Harmonize(color)
	if err != nil {
		errorOut(c, err)
		return
	}
	var buf bytes.Buffer
	if err := drawWheel(&buf, set, wheelSize); err != nil {
		errorOutInternal(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func viewHistory(c *gin.Context) {
	if !historyEnabled() {
		c.JSON(http.StatusNotFound, gin.H{"error": "History is disabled."})
		return
	}
	records, err := getRecentLookups(hvConf.HistoryLimit)
	if err != nil {
		errorOutInternal(c, err)
		return
	}
	popular, err := getPopularColors(hvConf.HistoryLimit)
	if err != nil {
		errorOutInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recent": records, "popular": popular})
}

func apiHarmony(c *gin.Context) {
	color, _, err := validateColor(c)
	if err != nil {
		errorOut(c, err)
		return
	}
	set, err := harmony.Harmonize(color)
	if err != nil {
		errorOut(c, err)
		return
	}
	c.JSON(http.StatusOK, set)
}

func apiDiad(c *gin.Context) {
	color, _, err := validateColor(c)
	if err != nil {
		errorOut(c, err)
		return
	}
	colors, err := harmony.Diad(color)
	if err != nil {
		errorOut(c, err)
		return
	}
	c.JSON(http.StatusOK, colors)
}

func apiTriad(c *gin.Context) {
	color, _, err := validateColor(c)
	if err != nil {
		errorOut(c, err)
		return
	}
	colors, err := harmony.Triad(color)
	if err != nil {
		errorOut(c, err)
		return
	}
	c.JSON(http.StatusOK, colors)
}

func apiHSL(c *gin.Context) {
	color, _, err := validateColor(c)
	if err != nil {
		errorOut(c, err)
		return
	}
	hsl, err := harmony.HexToHSL(color)
	if err != nil {
		errorOut(c, err)
		return
	}
	c.JSON(http.StatusOK, hsl)
}

func apiHex(c *gin.Context) {
	hsl, err := validateHSL(c)
	if err != nil {
		errorOut(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hex": harmony.HSLToHex(hsl.H, hsl.S, hsl.L)})
}

func pageData(c *gin.Context, title string, ginMap gin.H) gin.H {
	lang := pageLanguage(c)
	newGinMap := gin.H{}
	newGinMap["title"] = title
	newGinMap["m"] = hvConf
	newGinMap["lang"] = lang.String()
	newGinMap["headings"] = headings(lang)
	for key, value := range ginMap {
		newGinMap[key] = value
	}
	return newGinMap
}
