package robotstxt

import (
	"github.com/rohmanhakim/robotguard/internal/directive"
	"github.com/rohmanhakim/robotguard/internal/linescan"
)

// Parse drives the scanner over body, invoking h's callbacks in source
// order. It calls HandleRobotsStart before the first line and
// HandleRobotsEnd after the last; every line, directive or not, gets a
// ReportLineMetadata call.
func Parse(body []byte, h Handler) {
	h.HandleRobotsStart()
	linescan.Parse(body, func(l linescan.Line) {
		dispatch(l, h)
		h.ReportLineMetadata(l.Num, LineMeta(l.Meta))
	})
	h.HandleRobotsEnd()
}

func dispatch(l linescan.Line, h Handler) {
	if !l.Meta.HasDirective {
		return
	}
	switch l.Kind {
	case directive.UserAgent:
		h.HandleUserAgent(l.Num, l.Value)
	case directive.Allow:
		h.HandleAllow(l.Num, l.Value)
	case directive.Disallow:
		h.HandleDisallow(l.Num, l.Value)
	case directive.Sitemap:
		h.HandleSitemap(l.Num, l.Value)
	case directive.CrawlDelay:
		h.HandleCrawlDelay(l.Num, l.CrawlDelay)
	case directive.RequestRateKind:
		if l.HasRequestRate {
			h.HandleRequestRate(l.Num, l.RequestRate)
		}
	case directive.ContentSignalKind:
		h.HandleContentSignal(l.Num, l.ContentSignal)
	case directive.Unknown:
		h.HandleUnknownAction(l.Num, l.Key, l.Value)
	}
}
