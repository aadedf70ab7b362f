package commands

import (
	"fmt"

	"github.com/kyriakid1s/portfolio/pkg/domain"
	"github.com/kyriakid1s/portfolio/pkg/registry"
)

// HelpColumnWidth is the column the command descriptions start at in help output.
const HelpColumnWidth = 15

var (
	aboutLines = []string{
		"Full Stack Developer",
		"Specializing in:",
		"- API Development",
		"- Backend Architecture",
		"- Database Optimization",
		"",
		`Type "skills" for technical skills`,
	}

	skillsLines = []string{
		"Languages: Node.js, Python, Go, SQL, JavaScript/TypeScript, C/C++",
		"Frameworks: Express, FastAPI, Django, Flask, Next.js",
		"Databases: PostgreSQL, MongoDB, Redis",
		"DevOps: Docker, CI/CD",
	}

	contactLines = []string{
		"Email: dimitriiskyr@gmail.com",
		"GitHub: github.com/kyriakid1s",
		"LinkedIn: linkedin.com/in/dimitriskyriakidiskortsekidis",
		"",
	}

	sudoLine = `Permission denied: Try "contact" instead 😊`
)

// Default builds the shell registry: help, about, skills, contact, clear, sudo,
// followed by extra in the given order.
func Default(extra ...registry.Command) *registry.Registry {
	// help lists the registry it belongs to, so it resolves reg lazily.
	var reg *registry.Registry

	builtins := []registry.Command{
		{
			Name:        "help",
			Description: "Show available commands",
			Execute: func(args []string) domain.Result {
				return domain.Text(HelpLines(reg)...)
			},
		},
		static("about", "About me", aboutLines...),
		static("skills", "Technical skills", skillsLines...),
		static("contact", "Contact information", contactLines...),
		{
			Name:        "clear",
			Description: "Clear the terminal",
			Execute: func(args []string) domain.Result {
				return domain.Clear()
			},
		},
		static("sudo", "Admin privileges", sudoLine),
	}

	reg = registry.MustNew(append(builtins, extra...)...)
	return reg
}

// HelpLines formats one line per command of r, name padded to HelpColumnWidth.
func HelpLines(r *registry.Registry) []string {
	cmds := r.Commands()
	lines := make([]string, 0, len(cmds))
	for _, cmd := range cmds {
		lines = append(lines, fmt.Sprintf("%-*s%s", HelpColumnWidth, cmd.Name, cmd.Description))
	}
	return lines
}

func static(name, description string, lines ...string) registry.Command {
	return registry.Command{
		Name:        name,
		Description: description,
		Execute: func(args []string) domain.Result {
			return domain.Text(lines...)
		},
	}
}
