// Package live runs one interactive session per open page over a websocket.
//
// The protocol uses single-character JSON keys. The "t" field names the
// message type.
//
//	Client -> Server:
//	  "h" hello     {"t":"h","w":1280,"h":720,"p":1,"m":0,"c":0,"o":1}
//	                w,h = particle container box, p = container present,
//	                m = reduced motion, c = coarse pointer, o = IntersectionObserver available
//	  "z" resize    {"t":"z","w":800,"h":600}
//	  "l" language  {"t":"l"}
//	  "i" intersect {"t":"i","k":"r","i":"about","r":0.4}   k = "r" reveal | "s" section
//	  "p" pointer   {"t":"p","i":"card-1","x":10,"y":20,"w":300,"h":200}
//	  "q" leave     {"t":"q","i":"card-1"}
//	  "s" scroll    {"t":"s","y":120}
//	Server -> Client:
//	  "f" frame     {"t":"f","w":1280,"h":720,"c":[[x,y,r,o]],"l":[[x1,y1,x2,y2,a]]}
//	  "y" typed     {"t":"y","s":" · Cloud"}
//	  "g" language  {"t":"g","l":"pt","g":"pt","b":{"f":"🇺🇸","c":"EN"},"d":{...}}
//	  "v" reveal    {"t":"v","i":["about"]}
//	  "a" active    {"t":"a","h":"#about"}
//	  "x" tilt      {"t":"x","i":"card-1","f":"perspective(800px) ..."}
//	  "n" nav       {"t":"n","s":1}
//	  "e" error     {"t":"e","m":"..."}
package live

import "github.com/jglims/portfolio/internal/i18n"

const (
	MsgHello     = "h"
	MsgResize    = "z"
	MsgLanguage  = "l"
	MsgIntersect = "i"
	MsgPointer   = "p"
	MsgLeave     = "q"
	MsgScroll    = "s"

	MsgFrame  = "f"
	MsgTyped  = "y"
	MsgLang   = "g"
	MsgReveal = "v"
	MsgActive = "a"
	MsgTilt   = "x"
	MsgNav    = "n"
	MsgError  = "e"

	KindReveal  = "r"
	KindSection = "s"
)

// ClientMessage is any message from the browser; unused fields stay zero.
type ClientMessage struct {
	Type     string  `json:"t"`
	W        float64 `json:"w,omitempty"`
	H        float64 `json:"h,omitempty"`
	Present  int     `json:"p,omitempty"`
	Reduced  int     `json:"m,omitempty"`
	Coarse   int     `json:"c,omitempty"`
	Observer int     `json:"o,omitempty"`
	ID       string  `json:"i,omitempty"`
	Kind     string  `json:"k,omitempty"`
	Ratio    float64 `json:"r,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
}

// FrameMsg is one rendered particle frame. Coordinates are rounded to one
// decimal place.
type FrameMsg struct {
	Type    string       `json:"t"`
	W       float64      `json:"w"`
	H       float64      `json:"h"`
	Circles [][4]float64 `json:"c"`
	Lines   [][5]float64 `json:"l"`
}

type TypedMsg struct {
	Type string `json:"t"`
	Text string `json:"s"`
}

// LangMsg carries everything the page needs to switch language.
type LangMsg struct {
	Type    string            `json:"t"`
	Lang    string            `json:"l"`
	Tag     string            `json:"g"`
	Label   i18n.Label        `json:"b"`
	Strings map[string]string `json:"d"`
}

type RevealMsg struct {
	Type string   `json:"t"`
	IDs  []string `json:"i"`
}

type ActiveMsg struct {
	Type string `json:"t"`
	Href string `json:"h"`
}

type TiltMsg struct {
	Type      string `json:"t"`
	ID        string `json:"i"`
	Transform string `json:"f"`
}

type NavMsg struct {
	Type     string `json:"t"`
	Scrolled int    `json:"s"`
}

type ErrorMsg struct {
	Type    string `json:"t"`
	Message string `json:"m"`
}
