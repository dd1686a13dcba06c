// Package csvio reads and writes the client list in the simple comma
// separated layout the CRM has always exchanged. It is not RFC 4180: only the
// segment column is quoted on export, and import tolerates quoted fields that
// contain no quote characters of their own. Embedded newlines are unsupported.
package csvio

import (
	"regexp"
	"strings"
	"time"

	"wealthdesk/internal/models"
)

// Header is the first line of every export.
const Header = "ID,Name,Company,Email,Phone,Status,Segment,Demat ID,Owner,Last Contact"

// ImportedNote is the notes text given to every imported client.
const ImportedNote = "Imported from CSV"

// Column positions shared by Export and Parse.
const (
	colID = iota
	colName
	colCompany
	colEmail
	colPhone
	colStatus
	colSegment
	colDematID
	colOwner
	colLastContact
)

// Export renders clients one per line after the header. The segment is
// double-quoted because segment names contain commas; nothing else is
// escaped. There is no trailing newline.
func Export(clients []models.Client) string {
	lines := make([]string, 0, len(clients)+1)
	lines = append(lines, Header)
	for _, c := range clients {
		lines = append(lines, strings.Join([]string{
			c.ID,
			c.Name,
			c.Company,
			c.Email,
			c.Phone,
			string(c.Status),
			`"` + string(c.Segment) + `"`,
			c.DematID,
			c.Owner,
			c.LastContact.UTC().Format(time.RFC3339),
		}, ","))
	}
	return strings.Join(lines, "\n")
}

// fieldRe matches one field, including its leading comma, of a line that has
// been prefixed with a comma. Blanks may precede a quoted field.
var fieldRe = regexp.MustCompile(`,\s*("[^"]*"|[^,]*)`)

// SplitLine splits one line into trimmed, unquoted fields.
func SplitLine(line string) []string {
	matches := fieldRe.FindAllStringSubmatch(","+line, -1)
	fields := make([]string, 0, len(matches))
	for _, m := range matches {
		f := strings.TrimSpace(m[1])
		if len(f) >= 2 && strings.HasPrefix(f, `"`) && strings.HasSuffix(f, `"`) {
			f = strings.TrimSpace(f[1 : len(f)-1])
		}
		fields = append(fields, f)
	}
	return fields
}

// Parse reads clients from text. The first line is a header and is skipped.
// A line yields a client only when its name, company and email fields are all
// present; every other line is skipped and counted. Ids and timestamps in the
// input are ignored: the caller assigns fresh ones when storing. Status falls
// back to Lead and owner to defaultOwner.
func Parse(text, defaultOwner string) (clients []models.Client, skipped int) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) > 0 {
		lines = lines[1:]
	}
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		c, ok := parseClient(SplitLine(line), defaultOwner)
		if !ok {
			skipped++
			continue
		}
		clients = append(clients, c)
	}
	return clients, skipped
}

func parseClient(fields []string, defaultOwner string) (models.Client, bool) {
	get := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}
	name, company, email := get(colName), get(colCompany), get(colEmail)
	if name == "" || company == "" || email == "" {
		return models.Client{}, false
	}

	status, err := models.ParseClientStatus(get(colStatus))
	if err != nil {
		status = models.ClientStatusLead
	}
	segment, err := models.ParseClientSegment(get(colSegment))
	if err != nil {
		segment = ""
	}
	owner := get(colOwner)
	if owner == "" {
		owner = defaultOwner
	}

	return models.Client{
		Name:    name,
		Company: company,
		Email:   email,
		Phone:   get(colPhone),
		Tags:    []string{},
		Status:  status,
		Segment: segment,
		DematID: get(colDematID),
		Owner:   owner,
		Notes:   ImportedNote,
	}, true
}
