package gui

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/FlagBrew/digidex/internal/models"
	"github.com/rivo/tview"
)

const formExplanation = "Please fill out the form below, with the information (if you are unsure, keep the defaults)"

func (w *Wizard) sourceConfigPage(p *tview.Pages) tview.Primitive {
	form := tview.NewForm()
	frame := framed(form, "Configuring Catalog Source", formExplanation, hintForm)

	chosenURL := w.config.Source.URL
	chosenTimeout := w.config.Source.Timeout.String()
	deterministic := w.config.Stats.Deterministic

	form.AddInputField("Catalog URL", chosenURL, 60, nil, func(text string) {
		chosenURL = text
	})
	form.AddInputField("Request Timeout", chosenTimeout, 10, nil, func(text string) {
		chosenTimeout = text
	})
	form.AddCheckbox("Same stats on every run", deterministic, func(checked bool) {
		deterministic = checked
	})

	form.AddButton("Submit", func() {
		src, errs := validateSource(chosenURL, chosenTimeout)
		showErrors(frame, formExplanation, hintForm, errs)
		if len(errs) > 0 {
			return
		}

		w.config.Source = src
		w.config.Stats.Deterministic = deterministic
		p.SwitchToPage("database-type")
	})

	return frame
}

func validateSource(rawURL, rawTimeout string) (models.SourceConfig, []string) {
	var errs []string

	u, err := url.Parse(rawURL)
	if rawURL == "" || err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, "Catalog URL: must be an http(s) URL")
	}

	timeout, err := time.ParseDuration(rawTimeout)
	if err != nil || timeout <= 0 {
		errs = append(errs, "Request Timeout: must be a positive duration such as 30s")
	}

	return models.SourceConfig{URL: rawURL, Timeout: models.Duration{Duration: timeout}}, errs
}

func (w *Wizard) databaseConfigPage(p *tview.Pages, dbType string) tview.Primitive {
	form := tview.NewForm()
	frame := framed(form, "Configuring Database: "+dbType, formExplanation, hintForm)

	var fieldNames, values []string
	existing := ""
	if w.config.Database.DBType == dbType {
		existing = w.config.Database.ConnectionString
	}

	switch dbType {
	case "sqlite":
		fieldNames = []string{"File Name"}
		values = []string{sqliteFileName(existing, "digidex.db")}
		form.AddInputField(fieldNames[0], values[0], 20, acceptFileNameRune, func(text string) {
			values[0] = text
		})
	default:
		fieldNames = serverFields
		values = serverValues(dbType, existing)

		for i, name := range fieldNames {
			switch name {
			case "Password":
				form.AddPasswordField(name, values[i], 20, '*', func(text string) {
					values[i] = text
				})
			case "Port":
				form.AddInputField(name, values[i], 20, acceptPortInput, func(text string) {
					values[i] = text
				})
			default:
				form.AddInputField(name, values[i], 20, nil, func(text string) {
					values[i] = text
				})
			}
		}
	}

	form.AddButton("Submit", func() {
		var errs []string
		for i, name := range fieldNames {
			if values[i] == "" {
				errs = append(errs, name+": is required")
			}
		}

		var connectionString string
		if len(errs) == 0 {
			var err error
			if dbType == "sqlite" {
				if _, statErr := os.Stat(values[0]); statErr != nil && !os.IsNotExist(statErr) {
					errs = append(errs, "File Name: an unknown error occurred, please check your input")
				}
				connectionString = sqliteConnectionString(values[0])
			} else if connectionString, err = serverConnectionString(dbType, values); err != nil {
				errs = append(errs, "Port: "+err.Error())
			}
		}

		if len(errs) == 0 {
			if err := pingDatabase(dbType, connectionString); err != nil {
				errs = append(errs, fmt.Sprintf("%s connection error: %s", dbType, err))
			}
		}

		showErrors(frame, formExplanation, hintForm, errs)
		if len(errs) > 0 {
			return
		}

		w.config.Database = models.DatabaseConfig{
			DBType:           dbType,
			ConnectionString: connectionString,
		}
		p.AddPage("http-config", w.httpConfigPage(p), true, false)
		p.SwitchToPage("http-config")
	})

	return frame
}

// listenAddresses is 0.0.0.0 followed by the non link-local interface
// addresses of this machine.
func listenAddresses() ([]string, error) {
	available := []string{models.DefaultAddr}

	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return available, err
	}
	for _, address := range addrs {
		if strings.HasPrefix(address.String(), "fe80") {
			continue
		}
		ip, _, _ := strings.Cut(address.String(), "/")
		available = append(available, ip)
	}
	return available, nil
}

func isLoopback(addr string) bool {
	return addr == "127.0.0.1" || addr == "localhost" || addr == "::1"
}

func (w *Wizard) httpConfigPage(p *tview.Pages) tview.Primitive {
	form := tview.NewForm()
	frame := framed(form, "Configuring HTTP", formExplanation, hintForm)

	chosenAddr := w.config.HTTP.ListeningAddr
	chosenPort := strconv.Itoa(w.config.HTTP.Port)

	redraw := func(errs []string) {
		showErrors(frame, formExplanation, hintForm, errs)
		if isLoopback(chosenAddr) {
			frame.AddText(fmt.Sprintf("Using %s (localhost) is only recommended if running Docker", chosenAddr), true, tview.AlignLeft, colorWarning)
		}
	}

	ipHelpText := `
When selecting the listening address, 0.0.0.0 will have Digidex listen on all IP addresses bound to your computer.
For most users that is fine, as your system's IP address is likely dynamic.

You may instead bind to a specific IP address from the dropdown list.
If that IP assignment changes, you will need to update the configuration file.
`
	available, err := listenAddresses()
	if err != nil {
		ipHelpText = fmt.Sprintf("The IPs assigned to your machine could not be listed, falling back to 0.0.0.0 (all interfaces)\nError info: %s\n", err)
	}

	index := slices.Index(available, chosenAddr)
	if index == -1 {
		index = 0
		chosenAddr = available[0]
	}

	form.AddTextView("IP Info", ipHelpText, 0, 0, true, true)
	form.AddDropDown("Listening Address", available, index, func(option string, _ int) {
		chosenAddr = option
		redraw(nil)
	})
	form.AddTextView("Port Info", `The port must be between 1 and 65535.
On Linux, ports 1-1023 need root to bind to them [::b](not recommended)[-:-:-:-].
The default port (8080) should be good for most users, if it's in use, try incrementing it.`, 0, 0, true, true)
	form.AddInputField("Port", chosenPort, 20, acceptPortInput, func(text string) {
		chosenPort = text
	})

	form.AddButton("Submit", func() {
		port, err := parsePort(chosenPort)
		if err != nil {
			redraw([]string{"Port: " + err.Error()})
			return
		}

		l, err := net.Listen("tcp", net.JoinHostPort(chosenAddr, chosenPort))
		if err != nil {
			redraw([]string{err.Error()})
			return
		}
		l.Close()

		w.config.HTTP = models.HTTPConfig{
			ListeningAddr: chosenAddr,
			Port:          port,
		}
		p.SwitchToPage("display-config")
	})

	redraw(nil)
	return frame
}
