package feedparse

// Dialect identifies the feed format of a parsed document.
type Dialect int

const (
	// DialectUnrecognized means no known feed shape matched.
	DialectUnrecognized Dialect = iota
	// DialectRSS2 is RSS 2.0: <rss><channel><item>...
	DialectRSS2
	// DialectAtom is Atom: <feed><entry>...
	DialectAtom
	// DialectRDFA is RDF with a bare <rdf> root where items are siblings
	// of the channel element.
	DialectRDFA
	// DialectRDFB is RDF wrapped in <rdf:RDF>, with the channel under
	// either "channel" or the prefixed "channel:channel" key.
	DialectRDFB
)

func (d Dialect) String() string {
	switch d {
	case DialectRSS2:
		return "rss2"
	case DialectAtom:
		return "atom"
	case DialectRDFA:
		return "rdf-a"
	case DialectRDFB:
		return "rdf-b"
	default:
		return "unrecognized"
	}
}

// Document binds the detected dialect to its channel and entry nodes.
type Document struct {
	Dialect Dialect
	Channel *Node
	Entries []*Node
}

// Detect classifies the parsed tree. Detection is ordered; the first
// matching shape wins and later checks never run.
func Detect(doc *Node) Document {
	if rss := doc.First("rss"); rss != nil {
		if ch := rss.First("channel"); ch != nil {
			return Document{Dialect: DialectRSS2, Channel: ch, Entries: ch.All("item")}
		}
	}
	if feed := doc.First("feed"); feed != nil {
		return Document{Dialect: DialectAtom, Channel: feed, Entries: feed.All("entry")}
	}
	if rdf := doc.First("rdf"); rdf != nil {
		if ch := rdf.First("channel"); ch != nil {
			return Document{Dialect: DialectRDFA, Channel: ch, Entries: rdf.All("item")}
		}
	}
	if rdf := doc.First("rdf:RDF"); rdf != nil {
		ch := rdf.First("channel")
		if ch == nil {
			ch = rdf.First("channel:channel")
		}
		if ch == nil {
			ch = &Node{}
		}
		return Document{Dialect: DialectRDFB, Channel: ch, Entries: rdf.All("item")}
	}
	return Document{Dialect: DialectUnrecognized}
}
