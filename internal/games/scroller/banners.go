package scroller

// ASCII art for the modal screens and the sprites.

var titleBanner = []string{
	"                               _         ",
	"  ___  _ __   ___   _ __ _   _| | ___    ",
	" / _ \\| '_ \\ / _ \\ | '__| | | | |/ _ \\   ",
	"| (_) | | | |  __/ | |  | |_| | |  __/_  ",
	" \\___/|_| |_|\\___| |_|   \\__,_|_|\\___(_) ",
	"     _             _     ____ ___ _____  ",
	"  __| | ___  _ __ | |_  |  _ \\_ _| ____| ",
	" / _` |/ _ \\| '_ \\| __| | | | | ||  _|   ",
	"| (_| | (_) | | | | |_  | |_| | || |___  ",
	" \\__,_|\\___/|_| |_|\\__| |____/___|_____| ",
}

var controlsBox = []string{
	"+------------------+",
	"|  Game Controls   |",
	"|------------------|",
	"| SPACE or W: Jump |",
	"| A: Move Left     |",
	"| D: Move Right    |",
	"| S: Hold Position |",
	"+------------------+",
}

var levelUpBanner = []string{
	" _   _ _              _   _                   __              ",
	"| \\ | (_) ___ ___    | |_(_)_ __ ___   ___   / _| ___  _ __   ",
	"|  \\| | |/ __/ _ \\   | __| | '_ ` _ \\ / _ \\ | |_ / _ \\| '__|  ",
	"| |\\  | | (_|  __/_  | |_| | | | | | |  __/ |  _| (_) | |     ",
	"|_| \\_|_|\\___\\___( )  \\__|_|_| |_| |_|\\___| |_|  \\___/|_|     ",
	"  __ _ _ __   ___|/ |_| |__   ___ _ __    ___  _ __   ___     ",
	" / _` | '_ \\ / _ \\| __| '_ \\ / _ \\ '__|  / _ \\| '_ \\ / _ \\    ",
	"| (_| | | | | (_) | |_| | | |  __/ |    | (_) | | | |  __/_ _ ",
	" \\__,_|_| |_|\\___/ \\__|_| |_|\\___|_|     \\___/|_| |_|\\___(_|_)",
}

var lastLifeBanner = []string{
	" _        _    ____ _____   _     ___ _____ _____ _ ",
	"| |      / \\  / ___|_   _| | |   |_ _|  ___| ____| |",
	"| |     / _ \\ \\___ \\ | |   | |    | || |_  |  _| | |",
	"| |___ / ___ \\ ___) || |   | |___ | ||  _| | |___|_|",
	"|_____/_/   \\_\\____/ |_|   |_____|___|_|   |_____(_)",
}

var lifeLostBanner = []string{
	" _____ _           _     _                _        ",
	"|_   _| |__   __ _| |_  | |__  _   _ _ __| |_      ",
	"  | | | '_ \\ / _` | __| | '_ \\| | | | '__| __|     ",
	"  | | | | | | (_| | |_  | | | | |_| | |  | |_ _ _   ",
	" _|_| |_| |_|\\__,_|\\__| |_| |_|\\__,_|_|  \\__(_|_)  ",
	"|_ _| | | ___  ___| |_    __ _  | (_)/ _| ___       ",
	" | |  | |/ _ \\/ __| __|  / _` | | | | |_ / _ \\      ",
	" | |  | | (_) \\__ \\ |_  | (_| | | | |  _|  __/     ",
	"  |___| |_|\\___/|___/\\__|  \\__,_| |_|_|_|  \\___|      ",
}

var gameOverBanner = []string{
	"     _     _ _             _                _                            ",
	" ___| |__ (_) |_        __| | ___  __ _  __| |                           ",
	"/ __| '_ \\| | __|      / _` |/ _ \\/ _` |/ _` |                           ",
	"\\__ \\ | | | | |_ _ _  | (_| |  __/ (_| | (_| |                           ",
	"|___/_| |_|_|\\__(_|_)  \\__,_|\\___|\\__,_|\\__,_|                           ",
	"       _                    _      ___   _      _         _              ",
	"  __ _| |_ __ ___  __ _  __| |_   |__ \\ | | ___| |_ ___  | |_ _ __ _   _ ",
	" / _` | | '__/ _ \\/ _` |/ _` | | | |/ / | |/ _ \\ __/ __| | __| '__| | | |",
	"| (_| | | | |  __/ (_| | (_| | |_| |_|  | |  __/ |_\\__ \\ | |_| |  | |_| |",
	" \\__,_|_|_|  \\___|\\__,_|\\__,_|\\__, (_)  |_|\\___|\\__|___/  \\__|_|   \\__, |",
	"                              |___/                                |___/ ",
}

var leaderboardBanner = []string{
	" _                   _           ____                      _ ",
	"| |    ___  __ _  __| | ___ _ __| __ )  ___   __ _ _ __ __| |",
	"| |   / _ \\/ _` |/ _` |/ _ \\ '__|  _ \\ / _ \\ / _` | '__/ _` |",
	"| |__|  __/ (_| | (_| |  __/ |  | |_) | (_) | (_| | | | (_| |",
	"|_____\\___|\\__,_|\\__,_|\\___|_|  |____/ \\___/ \\__,_|_|  \\__,_|",
}

// Sprites

var playerSprite = []string{
	" 0 ",
	"/|\\",
	"/| ",
}

var structureSprite = []string{
	"  /\\  ",
	" /  \\",
	"/____\\",
	"| [] |",
	"|____|",
}

var largeObstacleSprite = []string{
	"./-\\. ",
	"< 8 >",
	"^\\-/^",
}

var smallObstacleSprite = []string{
	"\\/",
	"/\\",
}

var mountainSprite = []string{
	"    .                  .-.    .  _   *     _   .",
	"           *          /   \\     ((       _/ \\       *    .",
	"         _    .   .--'/\\_ \\     `      /    \\  *    ___",
	"     *  / \\_    _/ ^      ' __        /\\/\\  /\\  __/   \\ *",
	"       /    \\  /    .'   _/  /  \\  *' /    \\/  \\/ .`'\\_/\\   .",
	"  .   /\\/\\  /\\/ :' __  ^/  ^/    `--./.'  ^  `-.\\ _    _:\\ _",
	"     /    \\/  \\  _/  \\-' __/.' ^ _   \\_   .'\\   _/ \\ .  __/",
	"   /\\  .-   `. \\/     \\ / -.   _/ \\ -. `_/   \\ /    `._/  ^  ",
	"  /  `-.__ ^   / .-'.--'    . /    `--./ .-'  `-.  `-. `.  -  `.",
	"@/        `.  / /      `-.   /  .-'   / .   .'   \\    \\  \\  .-  \\%",
}

// grassPatterns are the two-line tufts; the first line is drawn one row above the grass row.
var grassPatterns = [][2]string{
	{"⠀⠀⣴⣄⠀⢰⡏⣸⠀⣴⠏", "⠀⢠⣿⠙⣦⡟⢠⣿⣿⢏⡀"},
	{"⠀⠀⠀⠀⣿⣇⠀⠀⢠⣧⠀⠀⢀⣀", "⠰⣶⣀⠀⠀⣿⢿⡄⣸⡿⣿⣤⡶⣿⠏"},
	{"⠀⠀⠀⠀⠀⠀⠀⠀⠀⣰⣇⠀⣀⠀⠀⢀⣴⡶⣩⠿⠋⠁", "⠀⠀⠠⢤⣤⣄⡀⠀⢀⡿⣿⣼⣻⢁⣴⠟⢥⣿⠟⠁⠀⠀"},
	{"⠀⠀  ⠀⣰⠇       ", "⣄⠀⢠⣾⡏⢀⣠⣾⠆"},
}
