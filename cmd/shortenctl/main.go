// Команда shortenctl администрирует хранилище коротких ссылок без HTTP-сервера.
package main

import "github.com/spf13/cobra"

func main() {
	cobra.CheckErr(newRootCmd().Execute())
}
