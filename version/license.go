package version

import (
	"fmt"
	"io"
)

type License struct {
	ModuleName  string
	LicenseName string
	Link        string
}

var Licenses = []License{
	{
		ModuleName:  "Go",
		LicenseName: "BSD License",
		Link:        "https://golang.org/LICENSE",
	},
	{
		ModuleName:  "aurora",
		LicenseName: "WTFPL",
		Link:        "https://github.com/logrusorgru/aurora/blob/master/LICENSE",
	},
	{
		ModuleName:  "go-isatty",
		LicenseName: "MIT License",
		Link:        "https://github.com/mattn/go-isatty/blob/master/LICENSE",
	},
	{
		ModuleName:  "getopt",
		LicenseName: "BSD License",
		Link:        "https://github.com/pborman/getopt/blob/master/LICENSE",
	},
	{
		ModuleName:  "errors",
		LicenseName: "BSD License",
		Link:        "https://github.com/pkg/errors/blob/master/LICENSE",
	},
	{
		ModuleName:  "bytefmt",
		LicenseName: "Apache License",
		Link:        "https://github.com/cloudfoundry/bytefmt/blob/master/LICENSE",
	},
	{
		ModuleName:  "chi",
		LicenseName: "MIT License",
		Link:        "https://github.com/go-chi/chi/blob/master/LICENSE",
	},
	{
		ModuleName:  "render",
		LicenseName: "MIT License",
		Link:        "https://github.com/go-chi/render/blob/master/LICENSE",
	},
	{
		ModuleName:  "cors",
		LicenseName: "MIT License",
		Link:        "https://github.com/go-chi/cors/blob/master/LICENSE",
	},
	{
		ModuleName:  "kin-openapi",
		LicenseName: "MIT License",
		Link:        "https://github.com/getkin/kin-openapi/blob/master/LICENSE",
	},
	{
		ModuleName:  "viper",
		LicenseName: "MIT License",
		Link:        "https://github.com/spf13/viper/blob/master/LICENSE",
	},
	{
		ModuleName:  "zap",
		LicenseName: "MIT License",
		Link:        "https://github.com/uber-go/zap/blob/master/LICENSE",
	},
	{
		ModuleName:  "yaml",
		LicenseName: "Apache License",
		Link:        "https://github.com/go-yaml/yaml/blob/v3/LICENSE",
	},
}

func PrintLicenses(w io.Writer) {
	for _, license := range Licenses {
		fmt.Fprintf(w, "%s:\n  %s\n  %s\n\n",
			license.ModuleName,
			license.LicenseName,
			license.Link,
		)
	}
}
