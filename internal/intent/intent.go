// Package intent classifies a transcript against the assistant's fixed
// command table. Matching is ordered substring containment over the
// lowercased transcript; the first route that hits wins, so the order of the
// table is part of the contract ("play" would otherwise shadow "news").
package intent

import "strings"

type Kind int

const (
	// KindAskAI is the fallback when no trigger matches.
	KindAskAI Kind = iota
	KindOpenSite
	KindTime
	KindDate
	KindSearch
	KindSetReminder
	KindPlayMusic
	KindFetchNews
	KindShutdown
)

var kindNames = map[Kind]string{
	KindAskAI:       "ask_ai",
	KindOpenSite:    "open_site",
	KindTime:        "time",
	KindDate:        "date",
	KindSearch:      "search",
	KindSetReminder: "set_reminder",
	KindPlayMusic:   "play_music",
	KindFetchNews:   "fetch_news",
	KindShutdown:    "shutdown",
}

func (k Kind) String() string { return kindNames[k] }

// Site is the target of an open-website command.
type Site struct {
	Name string
	URL  string
}

type route struct {
	phrases []string
	kind    Kind
	site    Site
}

// The priority order here is load-bearing and must not be reordered.
var routes = []route{
	{phrases: []string{"open google"}, kind: KindOpenSite, site: Site{Name: "Google", URL: "https://google.com"}},
	{phrases: []string{"open youtube"}, kind: KindOpenSite, site: Site{Name: "YouTube", URL: "https://youtube.com"}},
	{phrases: []string{"open chat gpt"}, kind: KindOpenSite, site: Site{Name: "ChatGPT", URL: "https://chat.openai.com"}},
	{phrases: []string{"open github"}, kind: KindOpenSite, site: Site{Name: "GitHub", URL: "https://github.com"}},
	{phrases: []string{"open instagram"}, kind: KindOpenSite, site: Site{Name: "Instagram", URL: "https://instagram.com"}},
	{phrases: []string{"open whatsapp"}, kind: KindOpenSite, site: Site{Name: "Web WhatsApp", URL: "https://web.whatsapp.com"}},
	{phrases: []string{"open udemy"}, kind: KindOpenSite, site: Site{Name: "Udemy", URL: "https://www.udemy.com"}},
	{phrases: []string{"the time"}, kind: KindTime},
	{phrases: []string{"the date"}, kind: KindDate},
	{phrases: []string{"search for"}, kind: KindSearch},
	{phrases: []string{"set a reminder", "remind me to"}, kind: KindSetReminder},
	{phrases: []string{"play"}, kind: KindPlayMusic},
	{phrases: []string{"news", "headlines"}, kind: KindFetchNews},
	{phrases: []string{"goodbye", "shut down"}, kind: KindShutdown},
}

// Match is the classification result. Trigger is the phrase that hit (empty
// for the AskAI fallback); Site is populated only for KindOpenSite.
type Match struct {
	Kind    Kind
	Trigger string
	Site    Site
}

// Classify runs the ordered table against an already-lowercased transcript.
func Classify(lowered string) Match {
	for _, r := range routes {
		for _, p := range r.phrases {
			if strings.Contains(lowered, p) {
				return Match{Kind: r.kind, Trigger: p, Site: r.site}
			}
		}
	}
	return Match{Kind: KindAskAI}
}
