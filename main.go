package main

import (
	"flag"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

var (
	verbose    = false
	configPath = "./harmony.conf"
	hvConf     = &config{}
)

func errorPrint(a ...interface{}) {
	if verbose {
		log.Printf("[ERROR] %s", fmt.Sprintln(a...))
	}
}

func debugPrint(a ...interface{}) {
	if verbose {
		log.Printf("[DEBUG] %s", fmt.Sprintln(a...))
	}
}

// setupRouter builds the gin engine for hvConf. Templates and assets are
// loaded relative to the working directory.
func setupRouter() *gin.Engine {
	r := gin.Default()

	r.SetFuncMap(template.FuncMap{
		"increment": func(x int) int {
			return x + 1
		},
	})

	r.LoadHTMLGlob("templates/*")
	r.Static("/assets", "./assets")
	initCookies(r, hvConf.SessionSecret)

	// 404 handler
	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "404.html", pageData(c, "Not Found", nil))
	})

	routes := r.Group("/")
	{
		routes.GET("/", viewHarmony)
		routes.GET("/wheel.png", viewWheel)
		routes.GET("/history", viewHistory)
	}

	api := r.Group("/api")
	{
		api.GET("/harmony", apiHarmony)
		api.GET("/diad", apiDiad)
		api.GET("/triad", apiTriad)
		api.GET("/hsl", apiHSL)
		api.GET("/hex", apiHex)
	}

	return r
}

func main() {
	flag.BoolVar(&verbose, "v", false, "verbose/debug output")
	flag.StringVar(&configPath, "c", configPath, "path to configuration file")
	flag.Parse()
	log.SetFlags(0)

	if err := readConfig(hvConf, configPath); err != nil {
		log.Fatalln(errors.Wrap(err, "reading config"))
	}
	if err := checkConfig(hvConf); err != nil {
		log.Fatalln(errors.Wrap(err, "illegal config"))
	}
	if hvConf.Verbose {
		verbose = true
	}
	if !verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	if hvConf.History {
		if err := initDatabase(hvConf.Database); err != nil {
			log.Fatalln(errors.Wrap(err, "opening history database"))
		}
		debugPrint("recording lookups to", hvConf.Database)
	}

	r := setupRouter()
	debugPrint("default color is", hvConf.DefaultColor)
	if err := r.Run(":" + strconv.Itoa(hvConf.Port)); err != nil {
		log.Fatalln(err)
	}
}
