/*
Package portfolio is a personal portfolio site with a simulated developer terminal.

The terminal is a small state machine: a closed registry of commands (help, about,
skills, contact, clear, sudo, plus the blog commands posts and read), a session
holding the transcript and the input buffer, and a pure view projection. The same
session is hosted by a bubbletea widget, a line-mode runner and an MCP server.

The rest of the site is a markdown blog read through Loam, rendered to HTML with
goldmark and chroma, and a contact relay that forwards form submissions over SMTP.

# Usage

	site, err := portfolio.New("./content")
	if err != nil {
		log.Fatal(err)
	}

	s := site.NewSession()
	s.SetInput("help")
	s.Submit()

	for _, line := range s.View().Lines {
		fmt.Println(line.Text)
	}

See cmd/portfolio for the CLI (terminal, serve, mcp, posts, intro).
*/
package portfolio
