/*
Package runner implements the interactive front end of the converter.

A TextHandler turns an io.Reader into a stream of cleaned answers; a Session
uses it to ask for an automaton field by field, re-asking on invalid input,
then converts the automaton and prints the closures and the new transition
table.

# Usage

	session := runner.NewSession(
		runner.NewTextHandler(os.Stdin, os.Stdout),
		enfa.New(),
		runner.WithHeader(tui.Title),
	)

	if err := session.Run(ctx); err != nil {
		log.Fatal(err)
	}
*/
package runner
