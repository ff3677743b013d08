package usecase

// stopWords - английские служебные слова, не попадающие в облако слов
var stopWords = toWordSet(
	"a", "about", "above", "after", "again", "against", "all", "also", "am", "an", "and", "any",
	"are", "aren't", "as", "at", "be", "because", "been", "before", "being", "below", "between",
	"both", "but", "by", "can", "can't", "cannot", "could", "couldn't", "did", "didn't", "do",
	"does", "doesn't", "doing", "don't", "down", "during", "each", "else", "ever", "few", "for",
	"from", "further", "get", "had", "hadn't", "has", "hasn't", "have", "haven't", "having", "he",
	"her", "here", "hers", "herself", "him", "himself", "his", "how", "however", "i", "if", "in",
	"into", "is", "isn't", "it", "its", "itself", "just", "let's", "like", "me", "more", "most",
	"mustn't", "my", "myself", "no", "nor", "not", "of", "off", "on", "once", "only", "or",
	"other", "otherwise", "ought", "our", "ours", "ourselves", "out", "over", "own", "same",
	"shall", "shan't", "she", "should", "shouldn't", "since", "so", "some", "such", "than",
	"that", "the", "their", "theirs", "them", "themselves", "then", "there", "these", "they",
	"this", "those", "through", "to", "too", "under", "until", "up", "very", "was", "wasn't",
	"we", "were", "weren't", "what", "when", "where", "which", "while", "who", "whom", "why",
	"with", "won't", "would", "wouldn't", "you", "your", "yours", "yourself", "yourselves",
	"i'm", "i've", "i'd", "i'll", "it's", "we're", "we've", "they're", "you're", "that's",
	"there's", "www", "com", "http", "r",
)

func toWordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
