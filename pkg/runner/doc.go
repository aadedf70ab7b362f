/*
Package runner implements the line-mode host for a terminal session.

It is used when stdin is not a TTY (pipes, scripts, CI) or when a caller wants
structured output. Each input line is sanitized and submitted; entries appended
to the transcript are written back through an IOHandler.

# Key Components

  - Runner: the read/submit/print loop.
  - IOHandler: decouples how lines are read and written.
  - TextHandler: colored text output via termenv.
  - JSONHandler: JSON-Lines output for tooling.

# Usage

	r := runner.NewRunner(
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
	)
	if err := r.Run(ctx, session.New(commands.Default())); err != nil {
		log.Fatal(err)
	}
*/
package runner
