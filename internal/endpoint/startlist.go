package endpoint

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StartlistRider is one rider on a startlist with their race number.
type StartlistRider struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

// StartlistTeam groups a team's riders on a startlist.
type StartlistTeam struct {
	Name   string           `json:"name"`
	Riders []StartlistRider `json:"riders"`
}

// Startlist is a race edition's startlist (race.php k=8 or k=9). The
// normal and extended pages share the same team-table layout, the
// extended one just carries more columns per rider.
type Startlist struct {
	Teams []StartlistTeam `json:"teams"`
}

// ParseStartlist parses a startlist page. Each table is one team: the
// team name in the header row, riders as number + name rows.
func ParseStartlist(html string) (*Startlist, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	sl := &Startlist{Teams: make([]StartlistTeam, 0)}

	doc.Find("table").Each(func(i int, tbl *goquery.Selection) {
		team := StartlistTeam{
			Name:   teamName(tbl),
			Riders: make([]StartlistRider, 0),
		}

		tbl.Find("tr").Each(func(j int, tr *goquery.Selection) {
			number, err := strconv.Atoi(cellText(tr, 0))
			if err != nil {
				return
			}
			name := cellText(tr, 1)
			if name == "" {
				return
			}
			team.Riders = append(team.Riders, StartlistRider{Number: number, Name: name})
		})

		if len(team.Riders) > 0 {
			sl.Teams = append(sl.Teams, team)
		}
	})

	return sl, nil
}

// teamName pulls the team name from a startlist table: the caption, a
// th header, or a thead cell, whichever the page variant uses.
func teamName(tbl *goquery.Selection) string {
	if caption := strings.TrimSpace(tbl.Find("caption").First().Text()); caption != "" {
		return caption
	}
	return strings.TrimSpace(tbl.Find("th").First().Text())
}
