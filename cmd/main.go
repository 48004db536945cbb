package main

import "github.com/kdduha/code-explainer/internal/cli"

//	@title			Code Explainer API
//	@version		1.0
//	@description	Explains source code snippets through a large language model.
//	@BasePath		/

func main() {
	cli.Execute()
}
