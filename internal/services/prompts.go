package services

import (
  "fmt"
  "github.com/yungbote/idea-incubator/internal/types"
)

// IdeaContext carries the idea fields the prompt builders interpolate.
// Pointer fields render as "N/A" (scores) or "Not available" (pitch) when nil.
type IdeaContext struct {
  Title                string
  Description          string
  DevelopmentStage     types.DevelopmentStage
  AIRefinedPitch       *string
  MarketPotential      *float64
  TechnicalComplexity  *float64
  ResourceRequirements *float64
}

func scoreOrNA(v *float64) string {
  if v == nil {
    return "N/A"
  }
  return fmt.Sprintf("%.1f", *v)
}

func pitchOrDefault(p *string) string {
  if p == nil || *p == "" {
    return "Not available"
  }
  return *p
}

func buildRefinementPrompt(title, description string, stage types.DevelopmentStage) string {
  return fmt.Sprintf(`You are an expert business consultant and startup advisor with 20+ years of experience helping entrepreneurs develop compelling business pitches.

Your task: Transform this business idea into a comprehensive, investor-ready pitch with clear structure and professional formatting.

BUSINESS IDEA:
Title: %s
Description: %s
Development Stage: %s

Please provide a detailed business analysis with the following structure:

**Executive Summary**
Provide a compelling 2-3 sentence overview of the business opportunity that hooks investors.

**Problem Statement**
- What specific problem does this solve?
- Who experiences this problem and how often?
- How significant is the pain point and current solutions' limitations?

**Solution Overview**
- How does your solution uniquely address the problem?
- What makes this solution different from existing alternatives?
- Key features, benefits, and competitive advantages

**Market Opportunity**
- Target market size and addressable segments
- Market trends and growth potential (include specific data if possible)
- Customer demographics, behavior, and willingness to pay

**Competitive Advantage**
- What differentiates this from direct and indirect competitors?
- Barriers to entry for potential competitors
- Unique value proposition and positioning strategy

**Business Model**
- Revenue streams and monetization strategy
- Pricing model and unit economics
- Scalability and growth potential

**Implementation Strategy**
- Key development phases and milestones
- Resource requirements (team, technology, capital)
- Timeline expectations and critical path activities
- Success metrics and KPIs

**Market Entry & Growth**
- Go-to-market strategy and customer acquisition
- Marketing and distribution channels
- Scaling plan and expansion opportunities

Use clear headers with ** formatting, bullet points for lists, and structured formatting for maximum readability. Make it investor-ready and professional.

Keep the total response between 600-900 words with clear section breaks and engaging, specific language.`, title, description, stage)
}

func buildFeasibilityPrompt(idea IdeaContext) string {
  return fmt.Sprintf(`You are a senior business analyst specializing in startup feasibility assessment with expertise in market analysis, technical evaluation, and resource planning.

BUSINESS IDEA TO ANALYZE:
Title: %s
Description: %s
Refined Pitch: %s
Development Stage: %s

TASK: Provide precise feasibility scores (1.0-10.0 scale) for these dimensions:

1. **MARKET POTENTIAL** (1.0=no market opportunity, 10.0=massive market opportunity)
   - Market size and growth trajectory
   - Customer demand intensity and willingness to pay
   - Market accessibility and timing favorability
   - Competitive landscape and positioning opportunities

2. **TECHNICAL COMPLEXITY** (1.0=very simple to implement, 10.0=extremely complex)
   - Technical feasibility and innovation requirements
   - Required expertise, skills, and technology stack
   - Infrastructure needs and development complexity
   - Integration challenges and scalability factors

3. **RESOURCE REQUIREMENTS** (1.0=minimal resources needed, 10.0=massive resources required)
   - Initial capital and funding requirements
   - Ongoing operational costs and burn rate
   - Team size, expertise, and hiring needs
   - Time to market and break-even timeline

Respond ONLY in valid JSON format:
{
    "market_potential": X.X,
    "technical_complexity": X.X,
    "resource_requirements": X.X,
    "analysis": {
        "market_reasoning": "Detailed analysis of market opportunity and potential",
        "technical_reasoning": "Assessment of technical challenges and complexity factors",
        "resource_reasoning": "Evaluation of capital, human, and time resource needs"
    }
}

Be precise with scores - use decimal places (e.g., 7.3, 8.7) based on careful analysis.`,
    idea.Title, idea.Description, pitchOrDefault(idea.AIRefinedPitch), idea.DevelopmentStage)
}

func buildMarketInsightsPrompt(title, description string, refinedPitch *string) string {
  return fmt.Sprintf(`You are a senior market research analyst with expertise in competitive intelligence and market analysis.

BUSINESS IDEA FOR ANALYSIS:
Title: %s
Description: %s
Refined Pitch: %s

Provide comprehensive market intelligence covering:

**Market Size & Growth Potential**
- Total Addressable Market (TAM) estimates
- Market growth rate and projections
- Key market drivers and opportunities

**Customer Segmentation**
- Primary target customer segments
- Customer pain points and needs
- Buying behavior and decision factors

**Competitive Landscape**
- Direct and indirect competitors
- Market positioning opportunities
- Competitive advantages and gaps

**Market Trends**
- Industry trends supporting this opportunity
- Technology adoption patterns
- Market timing considerations

**Go-to-Market Strategy**
- Recommended market entry approach
- Pricing strategy considerations
- Distribution and partnership opportunities

**Market Challenges**
- Key barriers and competitive threats
- Regulatory or compliance considerations
- Market education requirements

Provide specific, actionable insights with clear structure. Total length: 400-600 words.`,
    title, description, pitchOrDefault(refinedPitch))
}

func buildRiskAssessmentPrompt(idea IdeaContext) string {
  return fmt.Sprintf(`You are a senior risk management consultant specializing in startup risk assessment.

BUSINESS IDEA FOR RISK ANALYSIS:
Title: %s
Description: %s
Development Stage: %s
Market Potential Score: %s/10
Technical Complexity Score: %s/10

Conduct comprehensive risk analysis across critical business dimensions:

**Market & Commercial Risks**
- Customer adoption challenges and market acceptance
- Competitive threats and market saturation
- Market timing and demand volatility
Risk Level: [High/Medium/Low] | Mitigation Strategies

**Technical & Operational Risks**
- Development challenges and feasibility concerns
- Technology scalability and performance limitations
- Quality control and delivery challenges
Risk Level: [High/Medium/Low] | Mitigation Strategies

**Financial & Resource Risks**
- Funding availability and cash flow management
- Cost overruns and budget control
- Revenue generation and profitability timeline
Risk Level: [High/Medium/Low] | Mitigation Strategies

**Team & Execution Risks**
- Talent acquisition and retention
- Team scaling and management complexity
- Skills gaps and expertise requirements
Risk Level: [High/Medium/Low] | Mitigation Strategies

**Strategic & External Risks**
- Regulatory changes and compliance
- Market disruptions and economic factors
- Partnership dependencies and vendor risks
Risk Level: [High/Medium/Low] | Mitigation Strategies

For each category, provide specific risk factors, likelihood, impact, and actionable mitigation strategies. Total length: 400-600 words.`,
    idea.Title, idea.Description, idea.DevelopmentStage,
    scoreOrNA(idea.MarketPotential), scoreOrNA(idea.TechnicalComplexity))
}

func buildRoadmapPrompt(idea IdeaContext) string {
  stage := idea.DevelopmentStage
  if stage == "" {
    stage = types.StageConcept
  }
  return fmt.Sprintf(`You are a strategic planning consultant specializing in startup execution roadmaps.

BUSINESS IDEA FOR ROADMAP DEVELOPMENT:
Title: %s
Description: %s
Current Stage: %s
Market Potential: %s/10
Technical Complexity: %s/10
Resource Requirements: %s/10

Create a comprehensive 12-month strategic implementation roadmap:

**Phase 1: Foundation & Validation (Months 1-3)**
- Primary objectives and critical deliverables
- Market validation and customer discovery activities
- Technical feasibility and prototype development
- Team building and key hiring priorities
- Success metrics and budget requirements

**Phase 2: Development & Iteration (Months 4-6)**
- Product/service development priorities
- Customer feedback integration and iterations
- Technology infrastructure and scaling prep
- Marketing strategy and brand development
- Success metrics and resource needs

**Phase 3: Launch Preparation (Months 7-9)**
- Go-to-market strategy execution
- Sales process and team scaling
- Marketing campaigns and customer acquisition
- Operations scaling and quality systems
- Success metrics and budget requirements

**Phase 4: Market Entry & Growth (Months 10-12)**
- Product launch and market penetration
- Customer acquisition scaling and retention
- Performance monitoring and optimization
- Revenue scaling and profitability path
- Success metrics and expansion planning

**Critical Success Factors**
- Key assumptions and validation requirements
- Critical path activities and bottlenecks
- Resource optimization and cost management
- Risk mitigation and contingency plans

Adjust recommendations based on current stage (%s). Be specific with timelines, responsibilities, and measurable outcomes. Total length: 500-700 words.`,
    idea.Title, idea.Description, stage,
    scoreOrNA(idea.MarketPotential), scoreOrNA(idea.TechnicalComplexity),
    scoreOrNA(idea.ResourceRequirements), stage)
}

func buildTitleOptimizationPrompt(title, description string) string {
  return fmt.Sprintf(`You are a branding expert and marketing strategist specializing in startup naming, positioning, and market communication.

CURRENT BUSINESS IDEA:
Title: %s
Description: %s

Analyze the current title and suggest 3 optimized alternatives that are:
1. Clear, descriptive, and immediately understandable
2. Memorable, marketable, and brandable
3. Professional yet engaging and modern
4. SEO-friendly and searchable
5. Differentiated from competitors

For each suggestion, provide:
- The optimized title
- Branding rationale and positioning benefits
- Target audience appeal analysis
- SEO and marketability advantages

Format your response as:

**Current Title Analysis:**
[Brief assessment of current title's strengths and weaknesses]

**Optimized Title Options:**

**Option 1:** [Optimized Title]
*Rationale:* [Detailed explanation of branding strategy, target appeal, and market positioning benefits]
*Advantages:* [Specific SEO, marketing, and brand benefits]

**Option 2:** [Optimized Title]
*Rationale:* [Detailed explanation of branding strategy, target appeal, and market positioning benefits]
*Advantages:* [Specific SEO, marketing, and brand benefits]

**Option 3:** [Optimized Title]
*Rationale:* [Detailed explanation of branding strategy, target appeal, and market positioning benefits]
*Advantages:* [Specific SEO, marketing, and brand benefits]

**Recommendation:**
[Which option you recommend and why, considering market positioning and brand strategy]

Keep total response under 400 words while being specific and actionable.`, title, description)
}
