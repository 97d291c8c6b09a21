package main

import (
	"fmt"
	"os"

	"github.com/fulldump/goconfig"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/fulldump/inceptionstore/bootstrap"
	"github.com/fulldump/inceptionstore/configuration"
)

var banner = `
 ___                      _   _             ____  _                 
|_ _|_ __   ___ ___ _ __ | |_(_) ___  _ __ / ___|| |_ ___  _ __ ___ 
 | || '_ \ / __/ _ \ '_ \| __| |/ _ \| '_ \\___ \| __/ _ \| '__/ _ \
 | || | | | (_|  __/ |_) | |_| | (_) | | | |___) | || (_) | | |  __/
|___|_| |_|\___\___| .__/ \__|_|\___/|_| |_|____/ \__\___/|_|  \___|
                   |_|                     version ` + bootstrap.VERSION + `
`

func main() {

	c := configuration.Default()
	goconfig.Read(&c)

	if c.Version {
		fmt.Println("Version:", bootstrap.VERSION)
		return
	}

	if c.ShowBanner {
		fmt.Println(banner)
	}

	if c.ShowConfig {
		json.MarshalWrite(os.Stdout, c, jsontext.WithIndent("    "))
		fmt.Println()
	}

	start, _ := bootstrap.Bootstrap(&c)
	start()
}
