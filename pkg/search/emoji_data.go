package search

// emojiTable is the searchable emoji set, transcribed from the emoji picker's
// reference data (glyph plus a small set of aliases each).
var emojiTable = []emojiEntry{
	{Glyph: "😀", Names: []string{"grinning", "smile", "happy"}},
	{Glyph: "😃", Names: []string{"smiley", "happy", "joy"}},
	{Glyph: "😄", Names: []string{"smile", "happy", "joy"}},
	{Glyph: "😁", Names: []string{"grin", "happy"}},
	{Glyph: "😅", Names: []string{"sweat_smile", "nervous"}},
	{Glyph: "😂", Names: []string{"joy", "laugh", "crying", "tears"}},
	{Glyph: "🤣", Names: []string{"rofl", "laughing", "rolling"}},
	{Glyph: "😊", Names: []string{"blush", "smile", "happy"}},
	{Glyph: "😇", Names: []string{"innocent", "angel", "halo"}},
	{Glyph: "🙂", Names: []string{"slight_smile", "smile"}},
	{Glyph: "😉", Names: []string{"wink", "flirt"}},
	{Glyph: "😌", Names: []string{"relieved", "calm"}},
	{Glyph: "😍", Names: []string{"heart_eyes", "love", "crush"}},
	{Glyph: "🥰", Names: []string{"smiling_hearts", "love", "adore"}},
	{Glyph: "😘", Names: []string{"kiss", "blow_kiss", "love"}},
	{Glyph: "😋", Names: []string{"yum", "delicious", "tasty"}},
	{Glyph: "😎", Names: []string{"sunglasses", "cool"}},
	{Glyph: "🤓", Names: []string{"nerd", "geek", "glasses"}},
	{Glyph: "🧐", Names: []string{"monocle", "thinking", "curious"}},
	{Glyph: "🤔", Names: []string{"thinking", "hmm", "wonder"}},
	{Glyph: "🤨", Names: []string{"raised_eyebrow", "skeptic", "sus"}},
	{Glyph: "😐", Names: []string{"neutral", "meh", "blank"}},
	{Glyph: "😑", Names: []string{"expressionless", "blank"}},
	{Glyph: "😶", Names: []string{"no_mouth", "silent", "speechless"}},
	{Glyph: "😏", Names: []string{"smirk", "smug"}},
	{Glyph: "😒", Names: []string{"unamused", "meh", "bored"}},
	{Glyph: "🙄", Names: []string{"eye_roll", "whatever"}},
	{Glyph: "😬", Names: []string{"grimace", "awkward", "cringe"}},
	{Glyph: "😮‍💨", Names: []string{"exhale", "sigh", "relief"}},
	{Glyph: "🤥", Names: []string{"lying", "pinocchio"}},
	{Glyph: "😌", Names: []string{"relieved", "peaceful"}},
	{Glyph: "😔", Names: []string{"pensive", "sad", "thoughtful"}},
	{Glyph: "😪", Names: []string{"sleepy", "tired"}},
	{Glyph: "🤤", Names: []string{"drool", "drooling"}},
	{Glyph: "😴", Names: []string{"sleeping", "zzz", "tired"}},
	{Glyph: "😷", Names: []string{"mask", "sick", "covid"}},
	{Glyph: "🤒", Names: []string{"thermometer", "sick", "fever"}},
	{Glyph: "🤕", Names: []string{"bandage", "hurt", "injured"}},
	{Glyph: "🤢", Names: []string{"nauseated", "sick", "green"}},
	{Glyph: "🤮", Names: []string{"vomit", "puke", "sick"}},
	{Glyph: "🤧", Names: []string{"sneeze", "sick", "achoo"}},
	{Glyph: "🥵", Names: []string{"hot", "sweating", "heat"}},
	{Glyph: "🥶", Names: []string{"cold", "freezing", "frozen"}},
	{Glyph: "🥴", Names: []string{"woozy", "drunk", "dizzy"}},
	{Glyph: "😵", Names: []string{"dizzy", "dead", "knocked_out"}},
	{Glyph: "🤯", Names: []string{"exploding_head", "mind_blown", "shocked"}},
	{Glyph: "🤠", Names: []string{"cowboy", "yeehaw"}},
	{Glyph: "🥳", Names: []string{"party", "celebration", "birthday"}},
	{Glyph: "🥸", Names: []string{"disguise", "incognito", "glasses"}},
	{Glyph: "😎", Names: []string{"cool", "sunglasses", "awesome"}},
	{Glyph: "😕", Names: []string{"confused", "puzzled"}},
	{Glyph: "😟", Names: []string{"worried", "concerned"}},
	{Glyph: "🙁", Names: []string{"frown", "sad"}},
	{Glyph: "😮", Names: []string{"open_mouth", "surprised", "wow"}},
	{Glyph: "😯", Names: []string{"hushed", "surprised"}},
	{Glyph: "😲", Names: []string{"astonished", "shocked", "wow"}},
	{Glyph: "😳", Names: []string{"flushed", "embarrassed", "shocked"}},
	{Glyph: "🥺", Names: []string{"pleading", "puppy_eyes", "please"}},
	{Glyph: "😦", Names: []string{"frowning", "sad"}},
	{Glyph: "😧", Names: []string{"anguished", "worried"}},
	{Glyph: "😨", Names: []string{"fearful", "scared", "afraid"}},
	{Glyph: "😰", Names: []string{"anxious", "nervous", "sweat"}},
	{Glyph: "😥", Names: []string{"sad", "disappointed", "relieved"}},
	{Glyph: "😢", Names: []string{"cry", "sad", "tear"}},
	{Glyph: "😭", Names: []string{"sob", "crying", "sad", "tears"}},
	{Glyph: "😱", Names: []string{"scream", "scared", "horror"}},
	{Glyph: "😖", Names: []string{"confounded", "frustrated"}},
	{Glyph: "😣", Names: []string{"persevere", "struggle"}},
	{Glyph: "😞", Names: []string{"disappointed", "sad"}},
	{Glyph: "😓", Names: []string{"sweat", "nervous", "anxious"}},
	{Glyph: "😩", Names: []string{"weary", "tired", "exhausted"}},
	{Glyph: "😫", Names: []string{"tired", "exhausted"}},
	{Glyph: "🥱", Names: []string{"yawn", "tired", "sleepy", "bored"}},
	{Glyph: "😤", Names: []string{"triumph", "proud", "huffing"}},
	{Glyph: "😡", Names: []string{"rage", "angry", "mad"}},
	{Glyph: "😠", Names: []string{"angry", "mad", "grumpy"}},
	{Glyph: "🤬", Names: []string{"cursing", "swearing", "angry"}},
	{Glyph: "😈", Names: []string{"smiling_imp", "devil", "evil"}},
	{Glyph: "👿", Names: []string{"imp", "devil", "angry"}},
	{Glyph: "💀", Names: []string{"skull", "dead", "death"}},
	{Glyph: "☠️", Names: []string{"skull_crossbones", "danger", "death"}},
	{Glyph: "💩", Names: []string{"poop", "poo", "shit"}},
	{Glyph: "🤡", Names: []string{"clown", "joker"}},
	{Glyph: "👹", Names: []string{"ogre", "monster", "demon"}},
	{Glyph: "👺", Names: []string{"goblin", "tengu", "monster"}},
	{Glyph: "👻", Names: []string{"ghost", "boo", "spooky"}},
	{Glyph: "👽", Names: []string{"alien", "ufo", "extraterrestrial"}},
	{Glyph: "👾", Names: []string{"space_invader", "alien", "game"}},
	{Glyph: "🤖", Names: []string{"robot", "bot", "android"}},
	{Glyph: "👋", Names: []string{"wave", "hello", "bye", "hi"}},
	{Glyph: "🤚", Names: []string{"raised_back_hand", "stop"}},
	{Glyph: "🖐️", Names: []string{"hand", "high_five", "stop"}},
	{Glyph: "✋", Names: []string{"raised_hand", "stop", "high_five"}},
	{Glyph: "🖖", Names: []string{"vulcan", "spock", "star_trek"}},
	{Glyph: "👌", Names: []string{"ok", "okay", "perfect"}},
	{Glyph: "🤌", Names: []string{"pinched_fingers", "italian", "chef"}},
	{Glyph: "🤏", Names: []string{"pinching", "small", "tiny"}},
	{Glyph: "✌️", Names: []string{"peace", "victory", "v"}},
	{Glyph: "🤞", Names: []string{"crossed_fingers", "luck", "hope"}},
	{Glyph: "🤟", Names: []string{"love_you", "rock", "ily"}},
	{Glyph: "🤘", Names: []string{"rock", "metal", "horns"}},
	{Glyph: "🤙", Names: []string{"call_me", "shaka", "hang_loose"}},
	{Glyph: "👈", Names: []string{"point_left", "left"}},
	{Glyph: "👉", Names: []string{"point_right", "right"}},
	{Glyph: "👆", Names: []string{"point_up", "up"}},
	{Glyph: "🖕", Names: []string{"middle_finger", "fu", "fuck"}},
	{Glyph: "👇", Names: []string{"point_down", "down"}},
	{Glyph: "☝️", Names: []string{"point_up", "one", "wait"}},
	{Glyph: "👍", Names: []string{"thumbsup", "yes", "good", "like", "+1"}},
	{Glyph: "👎", Names: []string{"thumbsdown", "no", "bad", "dislike", "-1"}},
	{Glyph: "✊", Names: []string{"fist", "punch", "power"}},
	{Glyph: "👊", Names: []string{"punch", "fist_bump"}},
	{Glyph: "🤛", Names: []string{"left_fist", "fist_bump"}},
	{Glyph: "🤜", Names: []string{"right_fist", "fist_bump"}},
	{Glyph: "👏", Names: []string{"clap", "applause", "bravo"}},
	{Glyph: "🙌", Names: []string{"raised_hands", "hooray", "yay"}},
	{Glyph: "👐", Names: []string{"open_hands", "hug"}},
	{Glyph: "🤲", Names: []string{"palms_up", "cupped_hands"}},
	{Glyph: "🤝", Names: []string{"handshake", "deal", "agreement"}},
	{Glyph: "🙏", Names: []string{"pray", "please", "thanks", "namaste"}},
	{Glyph: "✍️", Names: []string{"writing", "write"}},
	{Glyph: "💪", Names: []string{"muscle", "strong", "flex", "bicep"}},
	{Glyph: "❤️", Names: []string{"heart", "love", "red_heart"}},
	{Glyph: "🧡", Names: []string{"orange_heart", "heart"}},
	{Glyph: "💛", Names: []string{"yellow_heart", "heart"}},
	{Glyph: "💚", Names: []string{"green_heart", "heart"}},
	{Glyph: "💙", Names: []string{"blue_heart", "heart"}},
	{Glyph: "💜", Names: []string{"purple_heart", "heart"}},
	{Glyph: "🖤", Names: []string{"black_heart", "heart"}},
	{Glyph: "🤍", Names: []string{"white_heart", "heart"}},
	{Glyph: "🤎", Names: []string{"brown_heart", "heart"}},
	{Glyph: "💔", Names: []string{"broken_heart", "heartbreak", "sad"}},
	{Glyph: "💕", Names: []string{"two_hearts", "love"}},
	{Glyph: "💞", Names: []string{"revolving_hearts", "love"}},
	{Glyph: "💓", Names: []string{"heartbeat", "love"}},
	{Glyph: "💗", Names: []string{"growing_heart", "love"}},
	{Glyph: "💖", Names: []string{"sparkling_heart", "love"}},
	{Glyph: "💘", Names: []string{"cupid", "love", "arrow"}},
	{Glyph: "💝", Names: []string{"gift_heart", "love", "present"}},
	{Glyph: "🔥", Names: []string{"fire", "hot", "lit", "flame"}},
	{Glyph: "✨", Names: []string{"sparkles", "stars", "magic", "new"}},
	{Glyph: "⭐", Names: []string{"star", "favorite"}},
	{Glyph: "🌟", Names: []string{"glowing_star", "star", "shine"}},
	{Glyph: "💫", Names: []string{"dizzy", "star", "shooting"}},
	{Glyph: "💥", Names: []string{"boom", "explosion", "collision"}},
	{Glyph: "💢", Names: []string{"anger", "angry", "vein"}},
	{Glyph: "💦", Names: []string{"sweat_drops", "water", "splash"}},
	{Glyph: "💨", Names: []string{"dash", "wind", "fast", "running"}},
	{Glyph: "🕳️", Names: []string{"hole", "black_hole"}},
	{Glyph: "💣", Names: []string{"bomb", "explosive"}},
	{Glyph: "💬", Names: []string{"speech_bubble", "chat", "comment"}},
	{Glyph: "👁️‍🗨️", Names: []string{"eye_bubble", "witness"}},
	{Glyph: "🗨️", Names: []string{"left_speech", "bubble"}},
	{Glyph: "🗯️", Names: []string{"right_anger", "bubble"}},
	{Glyph: "💭", Names: []string{"thought_bubble", "thinking"}},
	{Glyph: "💤", Names: []string{"zzz", "sleep", "tired"}},
	{Glyph: "👀", Names: []string{"eyes", "look", "see", "watching"}},
	{Glyph: "👁️", Names: []string{"eye", "see"}},
	{Glyph: "👂", Names: []string{"ear", "hear", "listen"}},
	{Glyph: "👃", Names: []string{"nose", "smell"}},
	{Glyph: "👅", Names: []string{"tongue", "lick", "taste"}},
	{Glyph: "👄", Names: []string{"lips", "mouth", "kiss"}},
	{Glyph: "💻", Names: []string{"laptop", "computer", "mac"}},
	{Glyph: "🖥️", Names: []string{"desktop", "computer", "pc"}},
	{Glyph: "⌨️", Names: []string{"keyboard", "type"}},
	{Glyph: "🖱️", Names: []string{"mouse", "click"}},
	{Glyph: "📱", Names: []string{"phone", "iphone", "mobile", "smartphone"}},
	{Glyph: "📧", Names: []string{"email", "mail", "envelope"}},
	{Glyph: "📝", Names: []string{"memo", "note", "write"}},
	{Glyph: "📎", Names: []string{"paperclip", "attachment"}},
	{Glyph: "📌", Names: []string{"pushpin", "pin"}},
	{Glyph: "📍", Names: []string{"pin", "location", "map"}},
	{Glyph: "🔗", Names: []string{"link", "chain", "url"}},
	{Glyph: "🔒", Names: []string{"lock", "locked", "secure"}},
	{Glyph: "🔓", Names: []string{"unlock", "unlocked", "open"}},
	{Glyph: "🔑", Names: []string{"key", "password"}},
	{Glyph: "🔧", Names: []string{"wrench", "tool", "fix"}},
	{Glyph: "🔨", Names: []string{"hammer", "tool", "build"}},
	{Glyph: "⚙️", Names: []string{"gear", "settings", "cog"}},
	{Glyph: "🛠️", Names: []string{"tools", "build", "fix"}},
	{Glyph: "📦", Names: []string{"package", "box", "shipping"}},
	{Glyph: "🗑️", Names: []string{"trash", "delete", "garbage"}},
	{Glyph: "📁", Names: []string{"folder", "directory"}},
	{Glyph: "📂", Names: []string{"open_folder", "directory"}},
	{Glyph: "📄", Names: []string{"document", "file", "page"}},
	{Glyph: "📊", Names: []string{"chart", "graph", "stats"}},
	{Glyph: "📈", Names: []string{"chart_up", "trending", "growth"}},
	{Glyph: "📉", Names: []string{"chart_down", "decline", "loss"}},
	{Glyph: "✅", Names: []string{"check", "done", "yes", "complete"}},
	{Glyph: "❌", Names: []string{"x", "no", "wrong", "cross", "cancel"}},
	{Glyph: "❓", Names: []string{"question", "what", "help"}},
	{Glyph: "❗", Names: []string{"exclamation", "important", "alert"}},
	{Glyph: "⚠️", Names: []string{"warning", "caution", "alert"}},
	{Glyph: "🚀", Names: []string{"rocket", "launch", "ship", "fast"}},
	{Glyph: "🎉", Names: []string{"party", "tada", "celebration", "congrats"}},
	{Glyph: "🎊", Names: []string{"confetti", "party", "celebration"}},
	{Glyph: "🎁", Names: []string{"gift", "present", "birthday"}},
	{Glyph: "🏆", Names: []string{"trophy", "winner", "award", "champion"}},
	{Glyph: "🥇", Names: []string{"gold_medal", "first", "winner"}},
	{Glyph: "🥈", Names: []string{"silver_medal", "second"}},
	{Glyph: "🥉", Names: []string{"bronze_medal", "third"}},
	{Glyph: "⏰", Names: []string{"alarm", "clock", "time"}},
	{Glyph: "⏱️", Names: []string{"stopwatch", "timer"}},
	{Glyph: "⌛", Names: []string{"hourglass", "time", "wait"}},
	{Glyph: "⏳", Names: []string{"hourglass_flowing", "time", "loading"}},
	{Glyph: "☀️", Names: []string{"sun", "sunny", "weather"}},
	{Glyph: "🌤️", Names: []string{"partly_sunny", "weather"}},
	{Glyph: "⛅", Names: []string{"partly_cloudy", "weather"}},
	{Glyph: "🌥️", Names: []string{"mostly_cloudy", "weather"}},
	{Glyph: "☁️", Names: []string{"cloud", "cloudy", "weather"}},
	{Glyph: "🌧️", Names: []string{"rain", "rainy", "weather"}},
	{Glyph: "⛈️", Names: []string{"thunder", "storm", "weather"}},
	{Glyph: "🌩️", Names: []string{"lightning", "storm", "weather"}},
	{Glyph: "❄️", Names: []string{"snow", "snowflake", "cold", "winter"}},
	{Glyph: "🌈", Names: []string{"rainbow", "pride"}},
	{Glyph: "🌊", Names: []string{"wave", "ocean", "water", "sea"}},
	{Glyph: "☕", Names: []string{"coffee", "cafe", "hot"}},
	{Glyph: "🍵", Names: []string{"tea", "green_tea"}},
	{Glyph: "🍺", Names: []string{"beer", "drink", "alcohol"}},
	{Glyph: "🍻", Names: []string{"beers", "cheers", "drink"}},
	{Glyph: "🍷", Names: []string{"wine", "drink", "alcohol"}},
	{Glyph: "🍸", Names: []string{"cocktail", "martini", "drink"}},
	{Glyph: "🍕", Names: []string{"pizza", "food"}},
	{Glyph: "🍔", Names: []string{"burger", "hamburger", "food"}},
	{Glyph: "🍟", Names: []string{"fries", "french_fries", "food"}},
	{Glyph: "🌮", Names: []string{"taco", "food", "mexican"}},
	{Glyph: "🍜", Names: []string{"ramen", "noodles", "soup", "food"}},
	{Glyph: "🍣", Names: []string{"sushi", "food", "japanese"}},
	{Glyph: "🍦", Names: []string{"ice_cream", "dessert"}},
	{Glyph: "🍰", Names: []string{"cake", "dessert", "birthday"}},
	{Glyph: "🎂", Names: []string{"birthday_cake", "cake", "party"}},
	{Glyph: "🍪", Names: []string{"cookie", "dessert", "snack"}},
	{Glyph: "🐶", Names: []string{"dog", "puppy", "pet"}},
	{Glyph: "🐱", Names: []string{"cat", "kitten", "pet"}},
	{Glyph: "🐭", Names: []string{"mouse", "rat"}},
	{Glyph: "🐰", Names: []string{"rabbit", "bunny"}},
	{Glyph: "🦊", Names: []string{"fox", "animal"}},
	{Glyph: "🐻", Names: []string{"bear", "animal"}},
	{Glyph: "🐼", Names: []string{"panda", "bear", "animal"}},
	{Glyph: "🐨", Names: []string{"koala", "animal"}},
	{Glyph: "🐯", Names: []string{"tiger", "animal"}},
	{Glyph: "🦁", Names: []string{"lion", "animal", "king"}},
	{Glyph: "🐮", Names: []string{"cow", "animal"}},
	{Glyph: "🐷", Names: []string{"pig", "animal"}},
	{Glyph: "🐸", Names: []string{"frog", "animal"}},
	{Glyph: "🐵", Names: []string{"monkey", "animal"}},
	{Glyph: "🙈", Names: []string{"see_no_evil", "monkey"}},
	{Glyph: "🙉", Names: []string{"hear_no_evil", "monkey"}},
	{Glyph: "🙊", Names: []string{"speak_no_evil", "monkey"}},
	{Glyph: "🐔", Names: []string{"chicken", "animal"}},
	{Glyph: "🐧", Names: []string{"penguin", "animal"}},
	{Glyph: "🐦", Names: []string{"bird", "animal"}},
	{Glyph: "🦆", Names: []string{"duck", "animal"}},
	{Glyph: "🦅", Names: []string{"eagle", "bird", "america"}},
	{Glyph: "🦉", Names: []string{"owl", "bird", "night"}},
	{Glyph: "🐝", Names: []string{"bee", "honey", "insect"}},
	{Glyph: "🐛", Names: []string{"bug", "insect", "caterpillar"}},
	{Glyph: "🦋", Names: []string{"butterfly", "insect"}},
	{Glyph: "🐌", Names: []string{"snail", "slow"}},
	{Glyph: "🐢", Names: []string{"turtle", "slow", "animal"}},
	{Glyph: "🐍", Names: []string{"snake", "python", "animal"}},
	{Glyph: "🦎", Names: []string{"lizard", "reptile"}},
	{Glyph: "🦖", Names: []string{"dinosaur", "trex", "dino"}},
	{Glyph: "🐙", Names: []string{"octopus", "sea", "animal"}},
	{Glyph: "🦀", Names: []string{"crab", "sea", "animal"}},
	{Glyph: "🦑", Names: []string{"squid", "sea", "animal"}},
	{Glyph: "🦐", Names: []string{"shrimp", "sea", "prawn"}},
	{Glyph: "🐠", Names: []string{"fish", "sea", "animal"}},
	{Glyph: "🐬", Names: []string{"dolphin", "sea", "animal"}},
	{Glyph: "🐳", Names: []string{"whale", "sea", "animal"}},
	{Glyph: "🦈", Names: []string{"shark", "sea", "jaws"}},
	{Glyph: "🐊", Names: []string{"crocodile", "alligator", "animal"}},
	{Glyph: "⬆️", Names: []string{"arrow_up", "up"}},
	{Glyph: "⬇️", Names: []string{"arrow_down", "down"}},
	{Glyph: "⬅️", Names: []string{"arrow_left", "left"}},
	{Glyph: "➡️", Names: []string{"arrow_right", "right"}},
	{Glyph: "↩️", Names: []string{"arrow_return", "back", "undo"}},
	{Glyph: "↪️", Names: []string{"arrow_forward", "redo"}},
	{Glyph: "🔄", Names: []string{"refresh", "reload", "sync", "arrows"}},
	{Glyph: "🔃", Names: []string{"clockwise", "arrows"}},
	{Glyph: "➕", Names: []string{"plus", "add"}},
	{Glyph: "➖", Names: []string{"minus", "subtract"}},
	{Glyph: "✖️", Names: []string{"multiply", "x"}},
	{Glyph: "➗", Names: []string{"divide", "division"}},
	{Glyph: "♾️", Names: []string{"infinity", "forever"}},
	{Glyph: "💲", Names: []string{"dollar", "money"}},
	{Glyph: "™️", Names: []string{"trademark", "tm"}},
	{Glyph: "©️", Names: []string{"copyright", "c"}},
	{Glyph: "®️", Names: []string{"registered", "r"}},
	{Glyph: "〰️", Names: []string{"wavy_dash", "squiggle"}},
	{Glyph: "➰", Names: []string{"curly_loop", "loop"}},
	{Glyph: "〽️", Names: []string{"part_alternation", "m"}},
	{Glyph: "✳️", Names: []string{"asterisk", "star"}},
	{Glyph: "✴️", Names: []string{"star", "sparkle"}},
	{Glyph: "❇️", Names: []string{"sparkle", "star"}},
	{Glyph: "‼️", Names: []string{"bangbang", "exclamation"}},
	{Glyph: "⁉️", Names: []string{"interrobang", "what"}},
	{Glyph: "🔴", Names: []string{"red_circle", "circle"}},
	{Glyph: "🟠", Names: []string{"orange_circle", "circle"}},
	{Glyph: "🟡", Names: []string{"yellow_circle", "circle"}},
	{Glyph: "🟢", Names: []string{"green_circle", "circle"}},
	{Glyph: "🔵", Names: []string{"blue_circle", "circle"}},
	{Glyph: "🟣", Names: []string{"purple_circle", "circle"}},
	{Glyph: "⚫", Names: []string{"black_circle", "circle"}},
	{Glyph: "⚪", Names: []string{"white_circle", "circle"}},
	{Glyph: "🟤", Names: []string{"brown_circle", "circle"}},
	{Glyph: "🔶", Names: []string{"orange_diamond", "diamond"}},
	{Glyph: "🔷", Names: []string{"blue_diamond", "diamond"}},
	{Glyph: "🔸", Names: []string{"small_orange_diamond", "diamond"}},
	{Glyph: "🔹", Names: []string{"small_blue_diamond", "diamond"}},
	{Glyph: "💯", Names: []string{"100", "hundred", "perfect", "score"}},
	{Glyph: "🆗", Names: []string{"ok", "okay"}},
	{Glyph: "🆕", Names: []string{"new"}},
	{Glyph: "🆒", Names: []string{"cool"}},
	{Glyph: "🆓", Names: []string{"free"}},
	{Glyph: "🆙", Names: []string{"up"}},
	{Glyph: "🔝", Names: []string{"top"}},
	{Glyph: "🔜", Names: []string{"soon"}},
	{Glyph: "🔛", Names: []string{"on"}},
	{Glyph: "🔚", Names: []string{"end"}},
	{Glyph: "🔙", Names: []string{"back"}},
	{Glyph: "ℹ️", Names: []string{"info", "information"}},
	{Glyph: "Ⓜ️", Names: []string{"m", "metro"}},
	{Glyph: "🅿️", Names: []string{"p", "parking"}},
	{Glyph: "🈁", Names: []string{"koko", "japanese"}},
	{Glyph: "🔞", Names: []string{"no_one_under_18", "adult", "nsfw"}},
	{Glyph: "📵", Names: []string{"no_mobile", "no_phone"}},
	{Glyph: "🔇", Names: []string{"mute", "no_sound", "silent"}},
	{Glyph: "🔕", Names: []string{"no_bell", "silent"}},
	{Glyph: "🚫", Names: []string{"no_entry", "prohibited", "forbidden"}},
	{Glyph: "⛔", Names: []string{"no_entry_sign", "stop"}},
}
