package help

// Link is a labelled address shown as a clickable entry.
type Link struct {
	Label string
	URL   string
}

const (
	documentationURL = "https://imhex.werwolv.net/docs"
	repositoryURL    = "https://github.com/WerWolv/ImHex"
	commitURLPrefix  = "https://github.com/WerWolv/ImHex/commit/"

	branchIcon = "⎇"
)

var donationLinks = []string{
	"https://werwolv.net/donate",
	"https://www.patreon.com/werwolv",
	"https://github.com/sponsors/WerWolv",
}

var contributors = []Link{
	{"Mary for porting ImHex to MacOS", "https://github.com/Thog"},
	{"Roblabla for adding the MSI Windows installer", "https://github.com/roblabla"},
	{"jam1garner for adding support for Rust plugins", "https://github.com/jam1garner"},
}

// The Native File Dialog entry is listed twice upstream and kept that way.
var libraries = []Link{
	{"ImGui by ocornut", "https://github.com/ocornut/imgui"},
	{"imgui_club by ocornut", "https://github.com/ocornut/imgui_club"},
	{"imnodes by Nelarius", "https://github.com/Nelarius/imnodes"},
	{"ImGuiColorTextEdit by BalazsJako", "https://github.com/BalazsJako/ImGuiColorTextEdit"},
	{"ImPlot by epezent", "https://github.com/epezent/implot"},
	{"capstone by aquynh", "https://github.com/aquynh/capstone"},
	{"JSON for Modern C++ by nlohmann", "https://github.com/nlohmann/json"},
	{"YARA by VirusTotal", "https://github.com/VirusTotal/yara"},
	{"Native File Dialog Extended by btzy and mlabbe", "https://github.com/btzy/nativefiledialog-extended"},
	{"Native File Dialog Extended by btzy and mlabbe", "https://github.com/btzy/nativefiledialog-extended"},
}

var systemLibraries = []Link{
	{"GNU libmagic", "http://www.darwinsys.com/file/"},
	{"GLFW3", "https://github.com/glfw/glfw"},
	{"LLVM", "https://github.com/llvm/llvm-project"},
	{"Python 3", "https://github.com/python/cpython"},
	{"FreeType", "https://gitlab.freedesktop.org/freetype/freetype"},
	{"Mbed TLS", "https://github.com/ARMmbed/mbedtls"},
}
