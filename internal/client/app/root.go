package app

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) getStatus() string {
	u := a.session.Current()
	if u == nil {
		return string(a.router.Current())
	}
	return fmt.Sprintf("(%s) %s", u.Username, a.router.Current())
}

// Root prints the banner and runs the REPL until EOF or exit.
func (a *App) Root(ctx context.Context) {
	log.Println("Welcome to TruthLens (type 'help' for commands)")
	if a.isLoggedIn() {
		fmt.Printf("Signed in as %s\n", a.session.Current().Username)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
